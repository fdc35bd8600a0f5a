package main

import "github.com/charmbracelet/bubbles/textinput"

type mode int

const (
	modeView mode = iota
	modeCommand
	modeZoom
)

type uiState struct {
	mode mode

	// activePlot is the plot the zoom drawer and plot-local actions target
	activePlot int

	noticeMsg  string
	noticeKind noticeKind
	noticeSeq  int

	zoom zoomDrawerState
}

// zoomDrawerState is the draft state of the zoom drawer. Nothing in here
// touches the plot registry until the draft is committed.
type zoomDrawerState struct {
	open       bool
	plot       int
	startInput textinput.Model
	endInput   textinput.Model
	focus      int
	step       float64
	draftStart float64
	draftEnd   float64
	draftSet   bool
	errorMsg   string
}

const (
	zoomFocusStart = iota
	zoomFocusEnd
	zoomFocusScrubber
)
