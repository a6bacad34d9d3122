package bitset

import "testing"

func TestSetHasClear(t *testing.T) {
	var m Mask
	if !m.IsEmpty() {
		t.Fatal("zero value should be empty")
	}
	m = m.Set(3).Set(7)
	if !m.Has(3) || !m.Has(7) {
		t.Fatal("expected 3 and 7 set")
	}
	if m.Has(1) {
		t.Fatal("1 should not be set")
	}
	m = m.Clear(3)
	if m.Has(3) {
		t.Fatal("3 should be cleared")
	}
}

func TestPopCount(t *testing.T) {
	if PopCount(Full) != 9 {
		t.Fatalf("expected 9, got %d", PopCount(Full))
	}
	if PopCount(0) != 0 {
		t.Fatalf("expected 0, got %d", PopCount(0))
	}
}

func TestExtractLowestAscending(t *testing.T) {
	m := FromDigits([]int{5, 1, 9, 3})
	var got []int
	for {
		idx, rest, ok := ExtractLowest(m)
		if !ok {
			break
		}
		got = append(got, idx+1)
		m = rest
	}
	want := []int{1, 3, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestMaskToIndexRoundTrip(t *testing.T) {
	for d := 1; d <= 9; d++ {
		m := IndexToMask(d - 1)
		idx, ok := MaskToIndex(m)
		if !ok || idx != d-1 {
			t.Fatalf("digit %d: got idx=%d ok=%v", d, idx, ok)
		}
	}
	multi := FromDigits([]int{1, 2})
	if _, ok := MaskToIndex(multi); ok {
		t.Fatal("expected MaskToIndex to fail on multi-bit mask")
	}
}

func TestCombinations(t *testing.T) {
	combos := Combinations([]int{1, 2, 3, 4}, 2)
	if len(combos) != 6 {
		t.Fatalf("expected 6 combinations, got %d", len(combos))
	}
	if combos[0][0] != 1 || combos[0][1] != 2 {
		t.Fatalf("expected lexicographic order, got %v", combos[0])
	}
}
