package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/segview/logging"
)

// ExportSegment writes the *currently displayed* traces to a CSV file,
// one sample per row, with the plot index and title as leading columns.
func ExportSegment(m *model, path string) error {
	segID, ok := m.data.currentSegmentID()
	if !ok {
		return fmt.Errorf("no segment selected")
	}

	// Open file
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"plot", "title", "x", "y"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, entry := range m.data.plots.entries {
		for _, tr := range entry.traces {
			for j, y := range tr.y {
				x := tr.x0 + tr.dx*float64(j)
				rec := []string{
					strconv.Itoa(i),
					entry.title,
					strconv.FormatFloat(x, 'g', -1, 64),
					strconv.FormatFloat(y, 'g', -1, 64),
				}
				if err := w.Write(rec); err != nil {
					return fmt.Errorf("write plot %d row %d: %w", i, j, err)
				}
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	logging.Infof("export: segment %d written to %s", segID, path)
	return nil
}

func (m *model) exportCurrentSegment(path string) tea.Cmd {
	if err := ExportSegment(m, path); err != nil {
		logging.Warnf("export: %v", err)
		return m.startNotice("Export failed: "+err.Error(), noticeError, noticeDuration)
	}
	return m.startNotice("Exported to "+path, noticeSuccess, noticeDuration)
}
