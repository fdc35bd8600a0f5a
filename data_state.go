package main

import (
	"github.com/andareed/segview/client"
	"github.com/andareed/segview/notes"
)

type dataState struct {
	// catalog state, refreshed wholesale from the backend
	classes  []client.Class
	segments []int

	// current is an index into segments, -1 when nothing is selected
	current int

	// filter flag sent with every data request: apply bandpass filter /
	// remove instrument response server-side
	filteredRemResp bool

	plots    plotSet
	metadata []client.MetaPair

	// segClassIDs is the current segment's label assignment, always
	// replaced from a server response, never computed locally
	segClassIDs map[int]bool

	// local review state mirrored from the session store
	marks map[int]notes.Mark
}

func newDataState(customPlots []string) dataState {
	return dataState{
		current:     -1,
		plots:       newPlotSet(customPlots),
		segClassIDs: make(map[int]bool),
		marks:       make(map[int]notes.Mark),
	}
}

// currentSegmentID returns the active segment's ID, or (0, false) when
// nothing is selected.
func (d *dataState) currentSegmentID() (int, bool) {
	if d.current < 0 || d.current >= len(d.segments) {
		return 0, false
	}
	return d.segments[d.current], true
}

// setClassState replaces both server-authoritative label sets. This is the
// only way label state ever changes.
func (d *dataState) setClassState(classes []client.Class, assigned []int) {
	if classes != nil {
		d.classes = classes
	}
	d.segClassIDs = make(map[int]bool, len(assigned))
	for _, id := range assigned {
		d.segClassIDs[id] = true
	}
}
