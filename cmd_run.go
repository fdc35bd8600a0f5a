package main

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/segview/notes"
)

func (m *model) runCommand() tea.Cmd {
	switch m.ci.cmd {
	case CmdJump:
		return m.jumpToSegment(m.ci.buf)

	case CmdFind:
		return m.findSegment(m.ci.buf)

	case CmdNote:
		return m.noteCurrent(m.ci.buf)
	}
	return nil
}

func (m *model) exitCommandMode() {
	m.ci = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// universal cancel
	if msg.Type == tea.KeyEsc {
		m.exitCommandMode()
		return m, nil
	}

	// constrained command: mark
	if m.ci.cmd == CmdMark {
		return m.handleMarkCommandKey(msg)
	}

	// commit
	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	}

	// editing
	switch msg.Type {
	case tea.KeyBackspace:
		if len(m.ci.buf) > 0 {
			m.ci.buf = m.ci.buf[:len(m.ci.buf)-1]
		}
		return m, nil
	}

	// append printable rune
	if len(msg.Runes) == 1 {
		m.ci.buf += string(msg.Runes[0])
	}
	return m, nil
}

func (m *model) handleMarkCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.exitCommandMode()
		return m, nil

	case "r", "g", "a", "c":
		var mark notes.Mark
		switch msg.String() {
		case "r":
			mark = notes.MarkRed
		case "g":
			mark = notes.MarkGreen
		case "a":
			mark = notes.MarkAmber
		case "c":
			mark = notes.MarkNone
		}

		cmd := m.markCurrent(mark)
		m.exitCommandMode()
		return m, cmd
	}

	// Unhandled keys: stay in mark mode, do nothing
	return m, nil
}

// jumpToSegment applies one-based manual input. Anything out of range or
// unparsable is a silent no-op on the index; the notice is the only surface.
func (m *model) jumpToSegment(text string) tea.Cmd {
	idx, ok := m.data.parseJumpTarget(text)
	if !ok {
		return m.startNotice(fmt.Sprintf("Segment %q out of bounds", text), noticeWarn, noticeDuration)
	}
	return m.setCurrent(idx)
}

func (m *model) findSegment(text string) tea.Cmd {
	segID, err := strconv.Atoi(text)
	if err != nil {
		return m.startNotice("Invalid segment id", noticeWarn, noticeDuration)
	}
	idx, ok := m.data.findSegmentIndex(segID)
	if !ok {
		return m.startNotice(fmt.Sprintf("Segment id %d not in list", segID), noticeWarn, noticeDuration)
	}
	return m.setCurrent(idx)
}

func (m *model) noteCurrent(note string) tea.Cmd {
	segID, ok := m.data.currentSegmentID()
	if !ok || m.session == nil {
		return nil
	}
	if err := m.session.SetNote(segID, note); err != nil {
		return m.startNotice("Could not save note", noticeError, noticeDuration)
	}
	if note == "" {
		return m.startNotice("Note cleared", noticePlain, noticeDuration)
	}
	return m.startNotice("Note saved", noticePlain, noticeDuration)
}
