package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/andareed/segview/client"
)

func TestExportSegmentWritesDisplayedTraces(t *testing.T) {
	m := newTestModel([]int{10})
	payload := make([]client.PlotPayload, m.data.plots.count())
	for i := range payload {
		payload[i] = client.PlotPayload{X0: 100, Dx: 0.5, Y: []float64{1, 2, 3}}
	}
	m.data.plots.applyPayload(payload)

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ExportSegment(m, path); err != nil {
		t.Fatalf("ExportSegment: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read exported csv: %v", err)
	}

	wantRows := 1 + m.data.plots.count()*3
	if len(records) != wantRows {
		t.Fatalf("exported %d rows, want %d", len(records), wantRows)
	}
	if got := records[0]; got[0] != "plot" || got[1] != "title" || got[2] != "x" || got[3] != "y" {
		t.Errorf("header = %v", got)
	}
	// second sample of the first plot: x = x0 + dx
	if got := records[2]; got[0] != "0" || got[2] != "100.5" || got[3] != "2" {
		t.Errorf("first plot second sample = %v, want [0 _ 100.5 2]", got)
	}
}

func TestExportSegmentNoSelection(t *testing.T) {
	m := newTestModel(nil)
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ExportSegment(m, path); err == nil {
		t.Fatal("export with no segment selected did not fail")
	}
}
