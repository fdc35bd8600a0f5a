package main

import (
	"fmt"

	"github.com/andareed/segview/client"
	"github.com/andareed/segview/logging"
)

// The first three plots are the primary waveform plots (the three channel
// components). They zoom as one; every plot after them is a custom plot
// that zooms alone.
const primaryPlotCount = 3

var primaryPlotTitles = [primaryPlotCount]string{"Waveform Z", "Waveform N", "Waveform E"}

// trace is one rendered line: uniformly sampled y values anchored at x0.
type trace struct {
	x0 float64
	dx float64
	y  []float64
}

// plotEntry is one plot's full state. The zoom range belongs to the entry
// and to nothing else; the synchronizer only ever writes into entries it is
// told to update.
type plotEntry struct {
	title  string
	traces []trace
	zoom   client.ZoomRange
}

// plotSet is the registry of all plots, primaries first.
type plotSet struct {
	entries []plotEntry

	// autorange is cleared while a zoom interaction is in effect and
	// restored whenever the zooms are reset.
	autorange bool
}

func newPlotSet(customTitles []string) plotSet {
	entries := make([]plotEntry, 0, primaryPlotCount+len(customTitles))
	for _, t := range primaryPlotTitles {
		entries = append(entries, plotEntry{title: t})
	}
	for i, t := range customTitles {
		if t == "" {
			t = fmt.Sprintf("Custom %d", i+1)
		}
		entries = append(entries, plotEntry{title: t})
	}
	return plotSet{entries: entries, autorange: true}
}

func (p *plotSet) count() int {
	return len(p.entries)
}

func (p *plotSet) isPrimary(i int) bool {
	return i >= 0 && i < primaryPlotCount
}

// zooms returns the per-plot zoom array in wire order.
func (p *plotSet) zooms() []client.ZoomRange {
	out := make([]client.ZoomRange, len(p.entries))
	for i := range p.entries {
		out[i] = p.entries[i].zoom
	}
	return out
}

// resetZooms unsets every plot's zoom and restores axis autoranging. Called
// from the navigation choke point so a new segment always starts unzoomed.
func (p *plotSet) resetZooms() {
	for i := range p.entries {
		p.entries[i].zoom = client.ZoomRange{}
	}
	p.autorange = true
}

// applyZoom records a committed zoom on plot i and returns the indices that
// adopted the range. A zoom on any primary plot moves all primaries
// together; any other plot moves alone. Unset ranges and bad indices are
// ignored.
func (p *plotSet) applyZoom(i int, rng client.ZoomRange) []int {
	if !rng.Set || i < 0 || i >= len(p.entries) {
		return nil
	}
	var affected []int
	if p.isPrimary(i) {
		for j := 0; j < primaryPlotCount && j < len(p.entries); j++ {
			affected = append(affected, j)
		}
	} else {
		affected = []int{i}
	}
	for _, j := range affected {
		p.entries[j].zoom = rng
	}
	p.autorange = false
	logging.Debugf("plot: zoom on %d applied to %v range=(%g,%g)", i, affected, rng.Start, rng.End)
	return affected
}

// applyPayload replaces the displayed traces and titles with a fresh backend
// payload. Existing traces are cleared before the new one is added, so
// reapplying the same payload never accumulates traces. Plots beyond the
// payload (or payload entries beyond the configured plots) are left
// untouched. The title comes from the payload on every render; the backend
// owns it.
func (p *plotSet) applyPayload(payload []client.PlotPayload) {
	n := len(p.entries)
	if len(payload) < n {
		n = len(payload)
	}
	for i := 0; i < n; i++ {
		e := &p.entries[i]
		e.traces = e.traces[:0]
		e.traces = append(e.traces, trace{x0: payload[i].X0, dx: payload[i].Dx, y: payload[i].Y})
		e.title = payload[i].Title
	}
	logging.Debugf("plot: payload applied to %d of %d plots", n, len(p.entries))
}

// clearTraces drops all traces but keeps zoom state; used while a fetch for
// a new segment is in flight so stale waveforms are never shown.
func (p *plotSet) clearTraces() {
	for i := range p.entries {
		p.entries[i].traces = p.entries[i].traces[:0]
	}
}
