package notes

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMarkRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if got := s.Mark(7); got != MarkNone {
		t.Errorf("fresh store mark = %q", got)
	}
	if err := s.SetMark(7, MarkAmber); err != nil {
		t.Fatal(err)
	}
	if got := s.Mark(7); got != MarkAmber {
		t.Errorf("mark = %q, want amber", got)
	}

	// MarkNone clears
	if err := s.SetMark(7, MarkNone); err != nil {
		t.Fatal(err)
	}
	if got := s.Mark(7); got != MarkNone {
		t.Errorf("cleared mark = %q", got)
	}
}

func TestMarkedSet(t *testing.T) {
	s := openTestStore(t)
	s.SetMark(3, MarkRed)
	s.SetMark(11, MarkGreen)

	marked, err := s.Marked()
	if err != nil {
		t.Fatal(err)
	}
	if len(marked) != 2 || marked[3] != MarkRed || marked[11] != MarkGreen {
		t.Errorf("marked = %v", marked)
	}
}

func TestNotes(t *testing.T) {
	s := openTestStore(t)

	s.SetNote(5, "pick looks late")
	if got := s.Note(5); got != "pick looks late" {
		t.Errorf("note = %q", got)
	}
	s.SetNote(5, "")
	if got := s.Note(5); got != "" {
		t.Errorf("note after clear = %q", got)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	s.SetMark(1, MarkGreen)
	s.SetNote(1, "keep")
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	if s2.Mark(1) != MarkGreen || s2.Note(1) != "keep" {
		t.Errorf("state lost across reopen: mark=%q note=%q", s2.Mark(1), s2.Note(1))
	}
}
