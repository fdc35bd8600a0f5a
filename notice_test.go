package main

import "testing"

func TestRenderNoticeIcons(t *testing.T) {
	cases := []struct {
		kind noticeKind
		want string
	}{
		{noticePlain, "saved"},
		{noticeSuccess, "✓ saved"},
		{noticeWarn, "! saved"},
		{noticeError, "× saved"},
	}
	for _, tc := range cases {
		if got := renderNotice("saved", tc.kind); got != tc.want {
			t.Errorf("renderNotice(kind=%d) = %q, want %q", tc.kind, got, tc.want)
		}
	}
	if got := renderNotice("", noticeError); got != "" {
		t.Errorf("empty notice rendered as %q", got)
	}
}

func TestStaleNoticeTimerDoesNotClearNewerNotice(t *testing.T) {
	m := newTestModel([]int{10})

	m.startNotice("first", noticeWarn, noticeDuration)
	firstID := m.ui.noticeSeq
	m.startNotice("second", noticeSuccess, noticeDuration)

	// the first notice's timer fires after the second notice replaced it
	m.Update(clearNoticeMsg{id: firstID})
	if m.ui.noticeMsg != "second" || m.ui.noticeKind != noticeSuccess {
		t.Errorf("stale timer cleared the newer notice: %q", m.ui.noticeMsg)
	}

	m.Update(clearNoticeMsg{id: m.ui.noticeSeq})
	if m.ui.noticeMsg != "" || m.ui.noticeKind != noticePlain {
		t.Errorf("matching timer left notice %q", m.ui.noticeMsg)
	}
}
