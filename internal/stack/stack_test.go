package stack

import "testing"

func TestPushPopRoundTrip(t *testing.T) {
	s := New()
	s.Top().SetSymbol(0, 0, 1, true)
	before := *s.Top()

	s.Push()
	s.Top().SetSymbol(1, 1, 2, true)

	if _, err := s.Pop(); err != nil {
		t.Fatalf("unexpected error popping: %v", err)
	}
	if *s.Top() != before {
		t.Fatal("expected pop to restore the exact prior snapshot")
	}
}

func TestLowWaterBlocksEviction(t *testing.T) {
	s := New()
	s.SetLowWaterMark()
	for i := 0; i < Capacity-1; i++ {
		s.Push()
	}
	// One more push would need to evict the low-watered bottom slot.
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic when push would cross the low-water mark")
		}
	}()
	s.Push()
}

func TestWrapAndUndoToMidpoint(t *testing.T) {
	s := New()
	for i := 1; i <= 1500; i++ {
		s.Push()
		r, c := (i/9)%9, i%9
		s.Top().SetCandidates(r, c, 0)
		s.Top().AddCandidate(r, c, 1+i%9)
	}
	if s.SP() != 1500 {
		t.Fatalf("expected sp 1500, got %d", s.SP())
	}

	for i := 0; i < 1000; i++ {
		if _, _, err := s.Undo(); err != nil {
			t.Fatalf("unexpected undo error at step %d: %v", i, err)
		}
	}
	if s.SP() != 500 {
		t.Fatalf("expected sp 500 after 1000 undos from 1500, got %d", s.SP())
	}
}

func TestBookmarkRoundTrip(t *testing.T) {
	s := New()
	s.Push()
	if err := s.NewBookmark(); err != nil {
		t.Fatalf("unexpected bookmark error: %v", err)
	}
	mark := s.SP()
	s.Push()
	s.Push()

	if st := s.CheckIfAtBookmark(); st != AwayFromMark {
		t.Fatalf("expected AwayFromMark, got %v", st)
	}
	if err := s.ReturnToLastBookmark(); err != nil {
		t.Fatalf("unexpected error returning to bookmark: %v", err)
	}
	if s.SP() != mark {
		t.Fatalf("expected sp %d after returning to bookmark, got %d", mark, s.SP())
	}
	// ReturnToLastBookmark pops the bookmark it returns to, so none is left.
	if st := s.CheckIfAtBookmark(); st != NoMark {
		t.Fatalf("expected NoMark, got %v", st)
	}
}

func TestRedoAfterUndo(t *testing.T) {
	s := New()
	s.Push()
	s.Top().SetSymbol(0, 0, 3, true)
	s.Push()
	s.Top().SetSymbol(0, 1, 4, true)

	if _, _, err := s.Undo(); err != nil {
		t.Fatalf("unexpected undo error: %v", err)
	}
	if s.Top().Cell(0, 1).Count != 0 {
		t.Fatal("expected (0,1) to be empty after undo")
	}
	if _, _, err := s.Redo(); err != nil {
		t.Fatalf("unexpected redo error: %v", err)
	}
	if s.Top().Cell(0, 1).Count != 1 {
		t.Fatal("expected (0,1) to be restored after redo")
	}
}
