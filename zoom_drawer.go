package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/segview/client"
)

// zoomAppliedMsg is the only way a zoom interaction reaches the registry:
// a typed event carrying a fully-specified range, produced when the drawer
// draft is committed. Incidental drawer activity never becomes one.
type zoomAppliedMsg struct {
	plot int
	rng  client.ZoomRange
}

const (
	zoomStepDefaultFrac = 0.1 // of the visible span
	zoomStepMinFrac     = 0.01
	zoomStepMaxFrac     = 0.5
)

func (m *model) openZoomDrawer(plot int) {
	z := &m.ui.zoom
	if z.startInput.Prompt == "" && z.startInput.Placeholder == "" {
		z.startInput = textinput.New()
		z.startInput.Placeholder = "start"
		z.startInput.CharLimit = 32
		z.startInput.Width = 20
		z.endInput = textinput.New()
		z.endInput.Placeholder = "end"
		z.endInput.CharLimit = 32
		z.endInput.Width = 20
	}

	z.open = true
	z.plot = plot
	z.errorMsg = ""
	z.step = zoomStepDefaultFrac

	lo, hi, ok := m.plotDataBounds(plot)
	if !ok {
		z.errorMsg = "No data in this plot"
		z.draftSet = false
		z.startInput.SetValue("")
		z.endInput.SetValue("")
	} else {
		entry := m.data.plots.entries[plot]
		if entry.zoom.Set {
			z.draftStart, z.draftEnd = entry.zoom.Start, entry.zoom.End
		} else {
			z.draftStart, z.draftEnd = lo, hi
		}
		z.draftSet = true
		m.updateZoomInputsFromDraft()
	}
	m.setZoomFocus(zoomFocusScrubber)
	m.ui.mode = modeZoom
}

func (m *model) closeZoomDrawer() {
	m.ui.zoom.open = false
	m.ui.zoom.errorMsg = ""
	m.ui.mode = modeView
}

func (m *model) handleZoomKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	z := &m.ui.zoom

	switch {
	case msg.Type == tea.KeyEsc:
		m.closeZoomDrawer()
		return m, nil
	case msg.Type == tea.KeyEnter:
		return m, m.commitZoomDraft()
	case msg.String() == "r":
		m.resetZoomDraft()
		return m, nil
	case msg.Type == tea.KeyTab:
		m.setZoomFocus((z.focus + 1) % 3)
		return m, nil
	case msg.Type == tea.KeyShiftTab:
		m.setZoomFocus((z.focus + 2) % 3)
		return m, nil
	case z.focus == zoomFocusScrubber && msg.Type == tea.KeyLeft:
		m.shiftZoomDraft(-1)
		return m, nil
	case z.focus == zoomFocusScrubber && msg.Type == tea.KeyRight:
		m.shiftZoomDraft(1)
		return m, nil
	case z.focus == zoomFocusScrubber && msg.Type == tea.KeyShiftLeft:
		m.expandZoomDraft(-1)
		return m, nil
	case z.focus == zoomFocusScrubber && msg.Type == tea.KeyShiftRight:
		m.expandZoomDraft(1)
		return m, nil
	case z.focus == zoomFocusScrubber && msg.String() == "-":
		m.adjustZoomStep(false)
		return m, nil
	case z.focus == zoomFocusScrubber && (msg.String() == "+" || msg.String() == "="):
		m.adjustZoomStep(true)
		return m, nil
	}

	var cmd tea.Cmd
	if z.focus == zoomFocusStart {
		z.startInput, cmd = z.startInput.Update(msg)
		return m, cmd
	}
	if z.focus == zoomFocusEnd {
		z.endInput, cmd = z.endInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) setZoomFocus(focus int) {
	z := &m.ui.zoom
	z.focus = focus
	switch focus {
	case zoomFocusStart:
		z.startInput.Focus()
		z.endInput.Blur()
	case zoomFocusEnd:
		z.startInput.Blur()
		z.endInput.Focus()
	default:
		z.startInput.Blur()
		z.endInput.Blur()
	}
}

func (m *model) updateZoomInputsFromDraft() {
	z := &m.ui.zoom
	if !z.draftSet {
		return
	}
	z.startInput.SetValue(strconv.FormatFloat(z.draftStart, 'f', -1, 64))
	z.endInput.SetValue(strconv.FormatFloat(z.draftEnd, 'f', -1, 64))
}

func (m *model) syncZoomDraftFromInputs() {
	z := &m.ui.zoom
	if v, err := strconv.ParseFloat(strings.TrimSpace(z.startInput.Value()), 64); err == nil {
		z.draftStart = v
		z.draftSet = true
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(z.endInput.Value()), 64); err == nil {
		z.draftEnd = v
	}
}

func (m *model) resetZoomDraft() {
	z := &m.ui.zoom
	z.errorMsg = ""
	lo, hi, ok := m.plotDataBounds(z.plot)
	if !ok {
		z.errorMsg = "No data in this plot"
		return
	}
	z.draftStart, z.draftEnd = lo, hi
	z.draftSet = true
	m.updateZoomInputsFromDraft()
}

// commitZoomDraft validates the inputs and turns them into a zoom event.
// Both endpoints must parse; otherwise nothing leaves the drawer.
func (m *model) commitZoomDraft() tea.Cmd {
	z := &m.ui.zoom
	z.errorMsg = ""

	start, errS := strconv.ParseFloat(strings.TrimSpace(z.startInput.Value()), 64)
	end, errE := strconv.ParseFloat(strings.TrimSpace(z.endInput.Value()), 64)
	if errS != nil {
		z.errorMsg = "Invalid start value"
		return nil
	}
	if errE != nil {
		z.errorMsg = "Invalid end value"
		return nil
	}
	if start >= end {
		z.errorMsg = "Start is not before end"
		return nil
	}

	plot := z.plot
	m.closeZoomDrawer()
	return func() tea.Msg {
		return zoomAppliedMsg{plot: plot, rng: client.ZoomRange{Start: start, End: end, Set: true}}
	}
}

func (m *model) zoomStepSize() float64 {
	z := &m.ui.zoom
	span := z.draftEnd - z.draftStart
	frac := z.step
	if frac < zoomStepMinFrac {
		frac = zoomStepMinFrac
	}
	if frac > zoomStepMaxFrac {
		frac = zoomStepMaxFrac
	}
	return span * frac
}

func (m *model) adjustZoomStep(increase bool) {
	z := &m.ui.zoom
	if increase {
		z.step *= 2
	} else {
		z.step /= 2
	}
	if z.step < zoomStepMinFrac {
		z.step = zoomStepMinFrac
	}
	if z.step > zoomStepMaxFrac {
		z.step = zoomStepMaxFrac
	}
}

func (m *model) shiftZoomDraft(dir int) {
	z := &m.ui.zoom
	z.errorMsg = ""
	lo, hi, ok := m.plotDataBounds(z.plot)
	if !ok {
		return
	}
	m.syncZoomDraftFromInputs()
	if !z.draftSet {
		z.draftStart, z.draftEnd = lo, hi
		z.draftSet = true
	}

	delta := float64(dir) * m.zoomStepSize()
	span := z.draftEnd - z.draftStart
	next0 := z.draftStart + delta
	next1 := z.draftEnd + delta
	if next0 < lo {
		next0 = lo
		next1 = lo + span
	}
	if next1 > hi {
		next1 = hi
		next0 = hi - span
	}
	z.draftStart, z.draftEnd = next0, next1
	m.updateZoomInputsFromDraft()
}

func (m *model) expandZoomDraft(dir int) {
	z := &m.ui.zoom
	z.errorMsg = ""
	lo, hi, ok := m.plotDataBounds(z.plot)
	if !ok {
		return
	}
	m.syncZoomDraftFromInputs()
	if !z.draftSet {
		z.draftStart, z.draftEnd = lo, hi
		z.draftSet = true
	}

	delta := m.zoomStepSize()
	if dir < 0 {
		next := z.draftStart - delta
		if next < lo {
			next = lo
		}
		z.draftStart = next
	} else {
		next := z.draftEnd + delta
		if next > hi {
			next = hi
		}
		z.draftEnd = next
	}
	if z.draftStart > z.draftEnd {
		z.draftEnd = z.draftStart
	}
	m.updateZoomInputsFromDraft()
}

// plotDataBounds returns the x extent of a plot's displayed trace.
func (m *model) plotDataBounds(plot int) (float64, float64, bool) {
	if plot < 0 || plot >= m.data.plots.count() {
		return 0, 0, false
	}
	entry := m.data.plots.entries[plot]
	if len(entry.traces) == 0 {
		return 0, 0, false
	}
	tr := entry.traces[0]
	if len(tr.y) == 0 || tr.dx <= 0 {
		return 0, 0, false
	}
	return tr.x0, tr.x0 + tr.dx*float64(len(tr.y)-1), true
}

func (m *model) zoomDrawerView(width int) string {
	z := &m.ui.zoom
	innerWidth := max(0, width-2)
	lineStyle := lipgloss.NewStyle().Width(innerWidth)

	title := "Zoom: (no plot)"
	if z.plot >= 0 && z.plot < m.data.plots.count() {
		title = "Zoom: " + m.data.plots.entries[z.plot].title
	}
	startLine := fmt.Sprintf("Start: %s", z.startInput.View())
	endLine := fmt.Sprintf("End:   %s", z.endInput.View())
	scrubberLine := m.zoomScrubberLine(innerWidth)
	helpLine := "tab: next  enter: apply  r: full extent  esc: cancel  ←/→: move  shift+←/→: expand  -/+: step"
	errorLine := ""
	if z.errorMsg != "" {
		errorLine = "Error: " + z.errorMsg
	}

	lines := []string{
		lineStyle.Render(title),
		lineStyle.Render(startLine),
		lineStyle.Render(endLine),
		lineStyle.Render(scrubberLine),
		lineStyle.Render(helpLine),
		lineStyle.Render(errorLine),
	}

	content := strings.Join(lines, "\n")
	return zoomDrawerArea.Width(width).Render(content)
}

func (m *model) zoomScrubberLine(width int) string {
	z := &m.ui.zoom
	lo, hi, ok := m.plotDataBounds(z.plot)
	if !ok || hi <= lo {
		return "Scrubber: n/a"
	}

	start, end := z.draftStart, z.draftEnd
	if !z.draftSet {
		start, end = lo, hi
	}

	minLabel := formatAxisValue(z.plot, lo)
	maxLabel := formatAxisValue(z.plot, hi)
	padding := 2
	barWidth := width - len(minLabel) - len(maxLabel) - padding*2
	if barWidth < 10 {
		return fmt.Sprintf("Window: %s - %s", formatAxisValue(z.plot, start), formatAxisValue(z.plot, end))
	}

	bar := make([]rune, barWidth)
	for i := range bar {
		bar[i] = '-'
	}

	clampf := func(v float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	startPos := int(float64(barWidth-1) * (clampf(start) - lo) / (hi - lo))
	endPos := int(float64(barWidth-1) * (clampf(end) - lo) / (hi - lo))
	if endPos < startPos {
		startPos, endPos = endPos, startPos
	}
	for i := startPos; i <= endPos && i < barWidth; i++ {
		bar[i] = '='
	}
	if startPos >= 0 && startPos < barWidth {
		bar[startPos] = '['
	}
	if endPos >= 0 && endPos < barWidth {
		bar[endPos] = ']'
	}

	return fmt.Sprintf("%s  %s  %s", minLabel, string(bar), maxLabel)
}

// formatAxisValue labels an axis position: primaries carry epoch millis,
// custom plots whatever unit the backend chose.
func formatAxisValue(plot int, v float64) string {
	if plot < primaryPlotCount {
		return formatAxisInstant(v)
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
