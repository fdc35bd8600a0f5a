package main

import (
	"strconv"

	"github.com/andareed/segview/logging"
)

// Navigation over the segment list. These are pure index transitions; the
// model wires them to setCurrent which does the fetching.

// nextIndex wraps past the end back to zero.
func (d *dataState) nextIndex() (int, bool) {
	n := len(d.segments)
	if n == 0 || d.current < 0 {
		return -1, false
	}
	return (d.current + 1) % n, true
}

// previousIndex wraps from zero to the end.
func (d *dataState) previousIndex() (int, bool) {
	n := len(d.segments)
	if n == 0 || d.current < 0 {
		return -1, false
	}
	if d.current == 0 {
		return n - 1, true
	}
	return d.current - 1, true
}

// parseJumpTarget turns one-based manual input into a zero-based index.
// Out-of-range and non-numeric input yield ok=false: the caller treats that
// as a silent no-op, not an error.
func (d *dataState) parseJumpTarget(text string) (int, bool) {
	n, err := strconv.Atoi(text)
	if err != nil {
		logging.Debugf("browse: jump input %q not a number", text)
		return -1, false
	}
	if n < 1 || n > len(d.segments) {
		logging.Debugf("browse: jump target %d outside [1,%d]", n, len(d.segments))
		return -1, false
	}
	return n - 1, true
}

// findSegmentIndex locates a segment by its backend ID.
func (d *dataState) findSegmentIndex(segID int) (int, bool) {
	for i, id := range d.segments {
		if id == segID {
			return i, true
		}
	}
	return -1, false
}

// nextMarkedIndex scans forward (dir=+1) or backward (dir=-1) from current
// for the nearest marked segment, without wrapping.
func (d *dataState) nextMarkedIndex(dir int) (int, bool) {
	if d.current < 0 {
		return -1, false
	}
	for i := d.current + dir; i >= 0 && i < len(d.segments); i += dir {
		if d.marks[d.segments[i]] != "" {
			return i, true
		}
	}
	return -1, false
}
