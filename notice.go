package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeKind classifies the transient status messages segview shows in the
// footer: plain confirmations, copy/export successes, browse warnings, and
// backend failures.
type noticeKind int

const (
	noticePlain noticeKind = iota
	noticeSuccess
	noticeWarn
	noticeError
)

func (k noticeKind) icon() string {
	switch k {
	case noticeSuccess:
		return "✓"
	case noticeWarn:
		return "!"
	case noticeError:
		return "×"
	default:
		return ""
	}
}

// renderNotice prefixes a notice with its kind's icon.
func renderNotice(msg string, kind noticeKind) string {
	if msg == "" {
		return ""
	}
	if icon := kind.icon(); icon != "" {
		return icon + " " + msg
	}
	return msg
}

// clearNoticeMsg expires one specific notice. The id matches the value of
// noticeSeq at the time the notice was shown, so a timer from an earlier
// notice can never clear a later one.
type clearNoticeMsg struct{ id int }

const noticeDuration = 2 * time.Second

func (m *model) startNotice(msg string, kind noticeKind, d time.Duration) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeKind = kind

	m.ui.noticeSeq++
	id := m.ui.noticeSeq

	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}
