package main

import (
	"reflect"
	"testing"

	"github.com/andareed/segview/client"
)

func testPayload(n int) []client.PlotPayload {
	out := make([]client.PlotPayload, n)
	for i := range out {
		out[i] = client.PlotPayload{
			Title: "plot",
			X0:    float64(i) * 100,
			Dx:    1,
			Y:     []float64{1, 2, 3},
		}
	}
	return out
}

func TestApplyZoomPrimaryBroadcast(t *testing.T) {
	p := newPlotSet([]string{"Spectrum", "Envelope"})
	rng := client.ZoomRange{Start: 1000, End: 2000, Set: true}

	affected := p.applyZoom(1, rng)
	if !reflect.DeepEqual(affected, []int{0, 1, 2}) {
		t.Fatalf("affected = %v, want [0 1 2]", affected)
	}
	for i := 0; i < 3; i++ {
		if p.entries[i].zoom != rng {
			t.Errorf("primary %d zoom = %+v", i, p.entries[i].zoom)
		}
	}
	for i := 3; i < p.count(); i++ {
		if p.entries[i].zoom.Set {
			t.Errorf("custom plot %d zoom should be unset", i)
		}
	}
}

func TestApplyZoomCustomIsIndependent(t *testing.T) {
	p := newPlotSet([]string{"Spectrum", "Envelope"})
	rng := client.ZoomRange{Start: 5, End: 9, Set: true}

	affected := p.applyZoom(4, rng)
	if !reflect.DeepEqual(affected, []int{4}) {
		t.Fatalf("affected = %v, want [4]", affected)
	}
	for i := 0; i < p.count(); i++ {
		want := i == 4
		if p.entries[i].zoom.Set != want {
			t.Errorf("plot %d zoom set = %v, want %v", i, p.entries[i].zoom.Set, want)
		}
	}
}

func TestApplyZoomIgnoresUnsetRangeAndBadIndex(t *testing.T) {
	p := newPlotSet(nil)
	if got := p.applyZoom(0, client.ZoomRange{}); got != nil {
		t.Errorf("unset range affected %v", got)
	}
	rng := client.ZoomRange{Start: 1, End: 2, Set: true}
	if got := p.applyZoom(99, rng); got != nil {
		t.Errorf("bad index affected %v", got)
	}
	if !p.autorange {
		t.Error("ignored events must not clear autorange")
	}
}

func TestResetZoomsClearsEverything(t *testing.T) {
	p := newPlotSet([]string{"Spectrum"})
	p.applyZoom(0, client.ZoomRange{Start: 1, End: 2, Set: true})
	p.applyZoom(3, client.ZoomRange{Start: 3, End: 4, Set: true})

	p.resetZooms()
	for i := range p.entries {
		if p.entries[i].zoom.Set {
			t.Errorf("plot %d zoom still set after reset", i)
		}
	}
	if !p.autorange {
		t.Error("autorange not restored by reset")
	}
}

func TestApplyPayloadIsIdempotent(t *testing.T) {
	p := newPlotSet([]string{"Spectrum"})
	payload := testPayload(4)

	p.applyPayload(payload)
	p.applyPayload(payload)

	for i := range p.entries {
		if got := len(p.entries[i].traces); got != 1 {
			t.Errorf("plot %d has %d traces, want exactly 1", i, got)
		}
	}
}

func TestApplyPayloadShorterThanPlotSet(t *testing.T) {
	p := newPlotSet([]string{"Spectrum"})
	p.applyPayload(testPayload(2))

	if len(p.entries[0].traces) != 1 || len(p.entries[1].traces) != 1 {
		t.Error("plots covered by the payload should have a trace")
	}
	if len(p.entries[2].traces) != 0 || len(p.entries[3].traces) != 0 {
		t.Error("plots beyond the payload must stay empty")
	}
}

func TestApplyPayloadTitleComesFromPayload(t *testing.T) {
	p := newPlotSet(nil)
	payload := testPayload(1)
	payload[0].Title = "Seg 9 - BHZ"
	p.applyPayload(payload)
	if p.entries[0].title != "Seg 9 - BHZ" {
		t.Errorf("title = %q, want payload title", p.entries[0].title)
	}

	// every render takes the backend's title, even an empty one
	payload[0].Title = ""
	p.applyPayload(payload)
	if p.entries[0].title != "" {
		t.Errorf("title = %q after empty payload title", p.entries[0].title)
	}
}
