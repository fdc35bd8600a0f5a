package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/andareed/segview/dialogs"
	"github.com/andareed/segview/logging"
)

const sidePanelWidth = 44

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return dialogs.Overlay(m.terminalWidth, m.terminalHeight, m.activeDialog.View())
	}

	contentW := max(20, m.terminalWidth-4)
	plotW := max(20, contentW-sidePanelWidth-1)

	plots := m.plotsView(plotW)
	side := m.sidePanelView(sidePanelWidth - 2)
	body := lipgloss.JoinHorizontal(lipgloss.Top, plots, side)

	parts := []string{body}
	if m.ui.zoom.open {
		parts = append(parts, m.zoomDrawerView(contentW))
	}
	parts = append(parts, m.footerView(contentW)) // always
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *model) plotsView(width int) string {
	logging.Debug("plotsView called")
	innerW := max(10, width-2)

	panels := make([]string, 0, m.data.plots.count())
	for i := range m.data.plots.entries {
		panels = append(panels, m.plotPanelView(i, innerW))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func (m *model) plotPanelView(i, width int) string {
	entry := m.data.plots.entries[i]
	selected := i == m.ui.activePlot

	style := plotPanel
	lineStyle := traceStyle
	if selected {
		style = plotPanelSelected
		lineStyle = traceSelStyle
	}

	title := plotTitleStyle.Render(entry.title)
	if m.loading {
		title += " …"
	}

	var body string
	if len(entry.traces) == 0 {
		body = strings.Repeat("·", max(0, width))
	} else {
		// one trace per plot after every render; see plotSet.applyPayload
		body = lineStyle.Render(sparkline(entry.traces[0].y, width))
	}

	zoomLabel := "zoom: auto"
	if entry.zoom.Set {
		zoomLabel = fmt.Sprintf("zoom: %s → %s",
			formatAxisValue(i, entry.zoom.Start), formatAxisValue(i, entry.zoom.End))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		body,
		zoomLabelStyle.Render(zoomLabel),
	)
	return style.Width(width + 2).Render(content)
}

func (m *model) sidePanelView(width int) string {
	var sections []string

	sections = append(sections, m.segmentHeaderLine())
	if meta := m.metadataTable(width); meta != "" {
		sections = append(sections, meta)
	}
	sections = append(sections, m.classesView())
	if note := m.noteView(); note != "" {
		sections = append(sections, note)
	}

	content := strings.Join(sections, "\n\n")
	return sidePanelStyle.Width(width).Render(content)
}

func (m *model) segmentHeaderLine() string {
	segID, ok := m.data.currentSegmentID()
	if !ok {
		return "No segment selected"
	}
	marker := defaultMarker
	switch m.data.marks[segID] {
	case "red":
		marker = redMarker.Render(pillMarker)
	case "green":
		marker = greenMarker.Render(pillMarker)
	case "amber":
		marker = amberMarker.Render(pillMarker)
	}
	return fmt.Sprintf("%s Segment %d  (%d/%d)", marker, segID, m.data.current+1, len(m.data.segments))
}

func (m *model) metadataTable(width int) string {
	if len(m.data.metadata) == 0 {
		return ""
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetAllowedRowLength(width)
	for _, pair := range m.data.metadata {
		tw.AppendRow(table.Row{pair.Key, displayMetaValue(pair.Value)})
	}
	return tw.Render()
}

func (m *model) classesView() string {
	if len(m.data.classes) == 0 {
		return "No classes defined"
	}
	var b strings.Builder
	b.WriteString("Labels (1-9 to toggle)")
	for i, cls := range m.data.classes {
		b.WriteString("\n")
		line := fmt.Sprintf("%d [%s] %s", i+1, checkbox(m.data.segClassIDs[cls.ID]), cls.Name)
		if m.data.segClassIDs[cls.ID] {
			b.WriteString(classAssigned.Render(line))
		} else {
			b.WriteString(classUnassigned.Render(line))
		}
	}
	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "x"
	}
	return " "
}

func (m *model) noteView() string {
	segID, ok := m.data.currentSegmentID()
	if !ok || m.session == nil {
		return ""
	}
	note := m.session.Note(segID)
	if note == "" {
		return ""
	}
	return "Note: " + note
}

// sparkline renders a series as unicode block characters, resampling to fit
// the width.
func sparkline(series []float64, width int) string {
	if width < 4 {
		width = 4
	}
	if len(series) == 0 {
		return strings.Repeat(".", width)
	}

	sampled := make([]float64, 0, width)
	if len(series) <= width {
		sampled = append(sampled, series...)
	} else {
		step := float64(len(series)-1) / float64(width-1)
		for i := 0; i < width; i++ {
			idx := int(math.Round(float64(i) * step))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(series) {
				idx = len(series) - 1
			}
			sampled = append(sampled, series[idx])
		}
	}

	minV, maxV := sampled[0], sampled[0]
	for _, v := range sampled[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	chars := []rune("▁▂▃▄▅▆▇█")
	if maxV == minV {
		return strings.Repeat(string(chars[len(chars)/2]), len(sampled))
	}

	var b strings.Builder
	b.Grow(len(sampled))
	for _, v := range sampled {
		idx := int((v - minV) / (maxV - minV) * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}
