package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/segview/client"
	"github.com/andareed/segview/logging"
)

// Messages produced by the fetch pipeline. Each get_data request carries a
// monotonically increasing sequence number; the update loop discards any
// response that is not the newest one issued, so a slow early response can
// never clobber a later one.

type catalogMsg struct {
	classes  []client.Class
	segments []int
	err      error
}

type segmentDataMsg struct {
	seq   uint64
	segID int
	resp  client.DataResponse
	err   error
}

type toggleClassMsg struct {
	segID int
	resp  client.ToggleResponse
	err   error
}

// loadCatalogCmd fetches the label set and the full segment list. Runs once
// at startup; the segment list is only ever replaced wholesale.
func (m *model) loadCatalogCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx := context.Background()
		classes, err := api.Classes(ctx)
		if err != nil {
			return catalogMsg{err: err}
		}
		segments, err := api.SegmentIDs(ctx)
		if err != nil {
			return catalogMsg{err: err}
		}
		return catalogMsg{classes: classes, segments: segments}
	}
}

// fetchSegmentCmd snapshots the current segment, filter flag and zoom array
// and requests fresh data. The snapshot happens here, not in the closure,
// so the request reflects the state at the moment it was triggered.
func (m *model) fetchSegmentCmd() tea.Cmd {
	segID, ok := m.data.currentSegmentID()
	if !ok {
		return nil
	}
	m.issuedSeq++
	req := client.DataRequest{
		SegID:           segID,
		FilteredRemResp: m.data.filteredRemResp,
		Zooms:           m.data.plots.zooms(),
	}
	seq := m.issuedSeq
	api := m.api
	logging.Debugf("fetch: seq=%d seg=%d filtered=%v", seq, segID, req.FilteredRemResp)
	return func() tea.Msg {
		resp, err := api.SegmentData(context.Background(), req)
		return segmentDataMsg{seq: seq, segID: segID, resp: resp, err: err}
	}
}

// toggleClassCmd proposes a label flip to the backend. Local state is not
// touched here; the response handler replaces it with the server's answer.
func (m *model) toggleClassCmd(classID, segID int) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		resp, err := api.ToggleClass(context.Background(), classID, segID)
		return toggleClassMsg{segID: segID, resp: resp, err: err}
	}
}

// handleSegmentData applies a get_data response, or drops it when stale.
func (m *model) handleSegmentData(msg segmentDataMsg) tea.Cmd {
	if msg.seq != m.issuedSeq {
		logging.Debugf("fetch: dropping stale response seq=%d (newest %d)", msg.seq, m.issuedSeq)
		return nil
	}
	m.loading = false
	if msg.err != nil {
		logging.Warnf("fetch: seg=%d failed: %v", msg.segID, msg.err)
		return m.startNotice("Fetch failed: "+msg.err.Error(), noticeError, noticeDuration)
	}

	m.data.plots.applyPayload(msg.resp.Plots)
	m.data.metadata = msg.resp.Metadata
	m.data.setClassState(nil, msg.resp.ClassIDs)
	m.refreshView("segment-data")
	return nil
}

func (m *model) handleCatalog(msg catalogMsg) tea.Cmd {
	if msg.err != nil {
		logging.Warnf("catalog: %v", msg.err)
		return m.startNotice("Backend unavailable: "+msg.err.Error(), noticeError, noticeDuration)
	}
	m.data.classes = msg.classes
	m.data.segments = msg.segments
	logging.Infof("catalog: %d segments, %d classes", len(msg.segments), len(msg.classes))
	if len(msg.segments) == 0 {
		m.data.current = -1
		return m.startNotice("No segments on backend", noticeWarn, noticeDuration)
	}
	return m.setCurrent(0)
}

func (m *model) handleToggleClass(msg toggleClassMsg) tea.Cmd {
	// A slow reply for a segment the reviewer already left must not
	// overwrite the current segment's panel.
	if cur, ok := m.data.currentSegmentID(); !ok || cur != msg.segID {
		logging.Debugf("toggle: dropping reply for seg=%d (now on %d)", msg.segID, m.data.current)
		return nil
	}
	if msg.err != nil {
		// State stays exactly as before the attempt.
		logging.Warnf("toggle: %v", msg.err)
		return m.startNotice("Label toggle failed", noticeWarn, noticeDuration)
	}
	m.data.setClassState(msg.resp.Classes, msg.resp.SegmentClassIDs)
	m.refreshView("toggle-class")
	return nil
}
