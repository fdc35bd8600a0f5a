package main

import (
	"testing"

	"github.com/andareed/segview/notes"
)

func browseState(segments []int, current int) dataState {
	d := newDataState(nil)
	d.segments = segments
	d.current = current
	return d
}

func TestNextPreviousWrap(t *testing.T) {
	d := browseState([]int{10, 11, 12}, 2)

	idx, ok := d.nextIndex()
	if !ok || idx != 0 {
		t.Fatalf("nextIndex from last = (%d, %v), want (0, true)", idx, ok)
	}

	d.current = 0
	idx, ok = d.previousIndex()
	if !ok || idx != 2 {
		t.Fatalf("previousIndex from first = (%d, %v), want (2, true)", idx, ok)
	}
}

func TestNextPreviousSymmetry(t *testing.T) {
	d := browseState([]int{1, 2, 3, 4, 5}, 0)
	for start := 0; start < len(d.segments); start++ {
		d.current = start
		idx, ok := d.nextIndex()
		if !ok {
			t.Fatalf("nextIndex from %d not ok", start)
		}
		d.current = idx
		back, ok := d.previousIndex()
		if !ok || back != start {
			t.Fatalf("previous(next(%d)) = (%d, %v), want (%d, true)", start, back, ok, start)
		}
	}
}

func TestNavigationOnEmptyList(t *testing.T) {
	d := browseState(nil, -1)
	if _, ok := d.nextIndex(); ok {
		t.Fatal("nextIndex on empty list reported ok")
	}
	if _, ok := d.previousIndex(); ok {
		t.Fatal("previousIndex on empty list reported ok")
	}
}

func TestParseJumpTarget(t *testing.T) {
	d := browseState([]int{10, 11, 12}, 0)

	cases := []struct {
		in      string
		wantIdx int
		wantOK  bool
	}{
		{"1", 0, true},
		{"3", 2, true},
		{"0", -1, false},
		{"4", -1, false},
		{"-1", -1, false},
		{"abc", -1, false},
		{"", -1, false},
	}
	for _, c := range cases {
		idx, ok := d.parseJumpTarget(c.in)
		if idx != c.wantIdx || ok != c.wantOK {
			t.Errorf("parseJumpTarget(%q) = (%d, %v), want (%d, %v)", c.in, idx, ok, c.wantIdx, c.wantOK)
		}
	}
}

func TestFindSegmentIndex(t *testing.T) {
	d := browseState([]int{100, 200, 300}, 0)

	if idx, ok := d.findSegmentIndex(200); !ok || idx != 1 {
		t.Fatalf("findSegmentIndex(200) = (%d, %v), want (1, true)", idx, ok)
	}
	if _, ok := d.findSegmentIndex(999); ok {
		t.Fatal("findSegmentIndex(999) reported ok for unknown id")
	}
}

func TestNextMarkedIndexNoWrap(t *testing.T) {
	d := browseState([]int{10, 11, 12, 13, 14}, 2)
	d.marks = map[int]notes.Mark{
		10: notes.MarkRed,
		14: notes.MarkGreen,
	}

	if idx, ok := d.nextMarkedIndex(1); !ok || idx != 4 {
		t.Fatalf("nextMarkedIndex(+1) = (%d, %v), want (4, true)", idx, ok)
	}
	if idx, ok := d.nextMarkedIndex(-1); !ok || idx != 0 {
		t.Fatalf("nextMarkedIndex(-1) = (%d, %v), want (0, true)", idx, ok)
	}

	// no wrap: from the last marked segment there is nothing further
	d.current = 4
	if _, ok := d.nextMarkedIndex(1); ok {
		t.Fatal("nextMarkedIndex(+1) wrapped past the end")
	}
}
