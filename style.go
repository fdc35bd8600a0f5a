package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	traceFGColor         = "#7fc8f8"
	traceSelectedFGColor = "#b7e4ff"
	panelBorderColor     = "240"
	panelSelectedBorder  = "#ff9f1c"
	zoomLabelFGColor     = "#a0a0a0"
)

// dimFG is the muted foreground for secondary text; light terminals need a
// darker shade to stay readable.
var dimFG = func() string {
	if termenv.HasDarkBackground() {
		return "245"
	}
	return "240"
}()

var (
	// Styles
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	plotPanel = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(panelBorderColor))
	plotPanelSelected = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color(panelSelectedBorder))

	plotTitleStyle = lipgloss.NewStyle().Bold(true)
	traceStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(traceFGColor))
	traceSelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(traceSelectedFGColor))
	zoomLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(zoomLabelFGColor))

	sidePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(dimFG)).
			Padding(0, 1)

	classAssigned   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	classUnassigned = lipgloss.NewStyle().Foreground(lipgloss.Color(dimFG))

	redMarker     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	greenMarker   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	amberMarker   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	defaultMarker = " "
	pillMarker    = "▐"

	zoomDrawerArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 0).BorderLeft(true)
)
