package rater

import (
	"testing"

	"github.com/jrm-1535/sudoku-lib-sub000/internal/generator"
)

func TestEvaluateClassifiesGeneratedPuzzle(t *testing.T) {
	g, err := generator.Generate(1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	level, counts := Evaluate(g)
	switch level {
	case Easy, Simple, Moderate, Difficult:
	default:
		t.Fatalf("unexpected level %v", level)
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		t.Fatal("expected at least one hint to have been applied during replay")
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		Easy:      "Easy",
		Simple:    "Simple",
		Moderate:  "Moderate",
		Difficult: "Difficult",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}
