package server

import (
	"context"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/andareed/segview/client"
)

func newTestClient(t *testing.T) *client.Client {
	t.Helper()
	srv := httptest.NewServer(New(5, 1).Router())
	t.Cleanup(srv.Close)
	return client.New(srv.URL, 0)
}

func TestElementsAndClasses(t *testing.T) {
	c := newTestClient(t)

	ids, err := c.SegmentIDs(context.Background())
	if err != nil {
		t.Fatalf("SegmentIDs: %v", err)
	}
	if !reflect.DeepEqual(ids, []int{1, 2, 3, 4, 5}) {
		t.Errorf("segment ids = %v", ids)
	}

	classes, err := c.Classes(context.Background())
	if err != nil {
		t.Fatalf("Classes: %v", err)
	}
	if len(classes) == 0 {
		t.Fatal("no classes returned")
	}
}

func TestDataIsDeterministicAndWindowed(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	req := client.DataRequest{SegID: 2, Zooms: make([]client.ZoomRange, 4)}
	first, err := c.SegmentData(ctx, req)
	if err != nil {
		t.Fatalf("SegmentData: %v", err)
	}
	if len(first.Plots) != 4 {
		t.Fatalf("plot count = %d, want 4", len(first.Plots))
	}
	second, err := c.SegmentData(ctx, req)
	if err != nil {
		t.Fatalf("SegmentData (repeat): %v", err)
	}
	if !reflect.DeepEqual(first.Plots, second.Plots) {
		t.Error("same request produced different payloads")
	}

	// Window the first primary plot to a tenth of its span.
	full := first.Plots[0]
	span := full.Dx * float64(len(full.Y))
	req.Zooms[0] = client.ZoomRange{Start: full.X0, End: full.X0 + span/10, Set: true}
	cropped, err := c.SegmentData(ctx, req)
	if err != nil {
		t.Fatalf("SegmentData (zoomed): %v", err)
	}
	if got := len(cropped.Plots[0].Y); got >= len(full.Y) {
		t.Errorf("windowed plot has %d samples, full has %d", got, len(full.Y))
	}
	// Other plots keep their full length.
	if got := len(cropped.Plots[1].Y); got != len(first.Plots[1].Y) {
		t.Errorf("unzoomed plot was cropped: %d != %d", got, len(first.Plots[1].Y))
	}
}

func TestToggleFlipsAndReturnsAuthoritativeSet(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	resp, err := c.ToggleClass(ctx, 3, 1)
	if err != nil {
		t.Fatalf("ToggleClass: %v", err)
	}
	if !reflect.DeepEqual(resp.SegmentClassIDs, []int{3}) {
		t.Errorf("after first toggle: %v", resp.SegmentClassIDs)
	}

	resp, err = c.ToggleClass(ctx, 3, 1)
	if err != nil {
		t.Fatalf("ToggleClass (second): %v", err)
	}
	if len(resp.SegmentClassIDs) != 0 {
		t.Errorf("after second toggle: %v", resp.SegmentClassIDs)
	}
}

func TestUnknownSegmentIsRejected(t *testing.T) {
	c := newTestClient(t)
	_, err := c.SegmentData(context.Background(), client.DataRequest{SegID: 99})
	if err == nil {
		t.Error("expected error for unknown segment")
	}
}

func TestWindowEdgeCases(t *testing.T) {
	p := client.PlotPayload{Title: "t", X0: 100, Dx: 10, Y: []float64{1, 2, 3, 4, 5}}

	got := window(p, client.ZoomRange{})
	if !reflect.DeepEqual(got, p) {
		t.Error("unset zoom should be a no-op")
	}

	got = window(p, client.ZoomRange{Start: 110, End: 130, Set: true})
	if !reflect.DeepEqual(got.Y, []float64{2, 3, 4}) || got.X0 != 110 {
		t.Errorf("window = %+v", got)
	}

	got = window(p, client.ZoomRange{Start: 1000, End: 2000, Set: true})
	if len(got.Y) != 0 {
		t.Errorf("out-of-range window should be empty, got %v", got.Y)
	}
}
