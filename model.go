package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/segview/client"
	"github.com/andareed/segview/clipboard"
	"github.com/andareed/segview/config"
	"github.com/andareed/segview/dialogs"
	"github.com/andareed/segview/logging"
	"github.com/andareed/segview/notes"
)

type model struct {
	cfg     config.Config
	api     *client.Client
	session *notes.Store

	data dataState
	ui   uiState
	ci   CommandInput

	activeDialog dialogs.Dialog

	ready   bool
	loading bool

	// issuedSeq is the newest get_data sequence number handed out; see fetch.go
	issuedSeq uint64

	terminalWidth  int
	terminalHeight int
}

func newModel(cfg config.Config, api *client.Client, session *notes.Store) *model {
	m := &model{
		cfg:     cfg,
		api:     api,
		session: session,
		data:    newDataState(cfg.CustomPlots),
	}
	if session != nil {
		marks, err := session.Marked()
		if err != nil {
			logging.Warnf("session: could not load marks: %v", err)
		} else {
			m.data.marks = marks
		}
	}
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("segview: initialised against %s", m.api.BaseURL())
	m.loading = true
	return m.loadCatalogCmd()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case catalogMsg:
		return m, m.handleCatalog(msg)

	case segmentDataMsg:
		return m, m.handleSegmentData(msg)

	case toggleClassMsg:
		return m, m.handleToggleClass(msg)

	case zoomAppliedMsg:
		affected := m.data.plots.applyZoom(msg.plot, msg.rng)
		if len(affected) == 0 {
			return m, nil
		}
		// refetch so the backend windows the data to the new ranges
		m.loading = true
		return m, m.fetchSegmentCmd()

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeKind = noticePlain
		}
		return m, nil

	case dialogs.ExportConfirmedMsg:
		m.activeDialog = nil
		return m, m.exportCurrentSegment(msg.Path)

	case dialogs.ExportCanceledMsg:
		m.activeDialog = nil
		return m, nil
	}

	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		d, cmd := m.activeDialog.Update(msg)
		m.activeDialog = d
		if !d.IsVisible() {
			m.activeDialog = nil
		}
		return m, cmd
	}

	switch m.ui.mode {
	case modeView:
		return m.handleViewModeKey(msg)
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeZoom:
		return m.handleZoomKey(msg)
	}
	return m, nil
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "right", "l":
		if idx, ok := m.data.nextIndex(); ok {
			return m, m.setCurrent(idx)
		}
	case "left", "h":
		if idx, ok := m.data.previousIndex(); ok {
			return m, m.setCurrent(idx)
		}

	case "down", "j":
		if m.ui.activePlot < m.data.plots.count()-1 {
			m.ui.activePlot++
		}
	case "up", "k":
		if m.ui.activePlot > 0 {
			m.ui.activePlot--
		}

	case "f":
		m.data.filteredRemResp = !m.data.filteredRemResp
		logging.Infof("filter flag now %v", m.data.filteredRemResp)
		if _, ok := m.data.currentSegmentID(); ok {
			m.loading = true
			return m, m.fetchSegmentCmd()
		}

	case "z":
		m.openZoomDrawer(m.ui.activePlot)
		return m, nil

	case "Z":
		if _, ok := m.data.currentSegmentID(); ok {
			m.data.plots.resetZooms()
			m.loading = true
			return m, m.fetchSegmentCmd()
		}

	case "m":
		m.ui.mode = modeCommand
		m.ci = CommandInput{cmd: CmdMark}
		logging.Debug("Entering Mode: Mark")
		return m, nil

	case "n":
		if idx, ok := m.data.nextMarkedIndex(1); ok {
			return m, m.setCurrent(idx)
		}
		return m, m.startNotice("No next marked segment", noticeWarn, noticeDuration)
	case "N":
		if idx, ok := m.data.nextMarkedIndex(-1); ok {
			return m, m.setCurrent(idx)
		}
		return m, m.startNotice("No previous marked segment", noticeWarn, noticeDuration)

	case ":", "/", "#":
		cmd := CommandFromPrefix([]rune(msg.String())[0])
		m.ui.mode = modeCommand
		m.ci = CommandInput{cmd: cmd}
		if cmd == CmdNote {
			// prefill with the existing note so editing is not destructive
			if segID, ok := m.data.currentSegmentID(); ok && m.session != nil {
				m.ci.buf = m.session.Note(segID)
			}
		}
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		pos := int(msg.String()[0] - '1')
		return m, m.toggleLabelByPosition(pos)

	case "e":
		segID, ok := m.data.currentSegmentID()
		if !ok {
			return m, nil
		}
		m.activeDialog = dialogs.NewExportDialog(fmt.Sprintf("segment_%d.csv", segID))
		return m, m.activeDialog.Focus()

	case "y":
		return m, m.copySegmentSummary()

	case "?":
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
		return m, nil
	}

	return m, nil
}

// setCurrent is the single choke point for changing the active segment:
// every zoom is unset, axis autoranging is restored, the stale frame is
// dropped, and a fetch with null zooms goes out.
func (m *model) setCurrent(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.data.segments) {
		return nil
	}
	m.data.current = idx
	m.data.plots.resetZooms()
	m.data.plots.clearTraces()
	m.data.metadata = nil
	m.data.segClassIDs = make(map[int]bool)
	m.ui.activePlot = 0
	m.loading = true
	logging.Debugf("browse: current=%d seg=%d", idx, m.data.segments[idx])
	return m.fetchSegmentCmd()
}

func (m *model) toggleLabelByPosition(pos int) tea.Cmd {
	if pos < 0 || pos >= len(m.data.classes) {
		return nil
	}
	segID, ok := m.data.currentSegmentID()
	if !ok {
		return nil
	}
	cls := m.data.classes[pos]
	logging.Infof("toggle: class=%d (%s) seg=%d", cls.ID, cls.Name, segID)
	return m.toggleClassCmd(cls.ID, segID)
}

func (m *model) markCurrent(mark notes.Mark) tea.Cmd {
	segID, ok := m.data.currentSegmentID()
	if !ok {
		return nil
	}
	if m.session != nil {
		if err := m.session.SetMark(segID, mark); err != nil {
			logging.Warnf("session: mark seg=%d: %v", segID, err)
			return m.startNotice("Could not save mark", noticeError, noticeDuration)
		}
	}
	if mark == notes.MarkNone {
		delete(m.data.marks, segID)
		return m.startNotice(fmt.Sprintf("Segment %d unmarked", segID), noticePlain, noticeDuration)
	}
	m.data.marks[segID] = mark
	return m.startNotice(fmt.Sprintf("Segment %d marked [%s]", segID, mark), noticePlain, noticeDuration)
}

func (m *model) copySegmentSummary() tea.Cmd {
	segID, ok := m.data.currentSegmentID()
	if !ok {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "segment %d", segID)
	for _, pair := range m.data.metadata {
		fmt.Fprintf(&b, "\n%s: %s", pair.Key, displayMetaValue(pair.Value))
	}
	if err := clipboard.Copy(b.String()); err != nil {
		logging.Warnf("clipboard: %v", err)
		return m.startNotice("Copy failed: "+err.Error(), noticeWarn, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Segment %d copied", segID), noticeSuccess, noticeDuration)
}

// refreshView is a hook for view-affecting transitions; rendering itself is
// recomputed every frame from state.
func (m *model) refreshView(reason string) {
	logging.Debugf("refreshView: %s", reason)
}
