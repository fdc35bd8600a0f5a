package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit         key.Binding
	NextSegment  key.Binding
	PrevSegment  key.Binding
	PlotDown     key.Binding
	PlotUp       key.Binding
	FilterToggle key.Binding
	ZoomDrawer   key.Binding
	ZoomReset    key.Binding
	MarkMode     key.Binding
	NextMark     key.Binding
	PrevMark     key.Binding
	ToggleLabel  key.Binding
	Export       key.Binding
	CopySegment  key.Binding
	OpenHelp     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	NextSegment: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("l/→", "next segment"),
	),
	PrevSegment: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("h/←", "previous segment"),
	),
	PlotDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/↓", "select next plot"),
	),
	PlotUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("k/↑", "select previous plot"),
	),
	FilterToggle: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "toggle filter / remove response"),
	),
	ZoomDrawer: key.NewBinding(
		key.WithKeys("z"),
		key.WithHelp("z", "zoom selected plot"),
	),
	ZoomReset: key.NewBinding(
		key.WithKeys("Z"),
		key.WithHelp("Z", "reset all zooms"),
	),
	MarkMode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mark segment"),
	),
	NextMark: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next marked segment"),
	),
	PrevMark: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "previous marked segment"),
	),
	ToggleLabel: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "toggle class label"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export traces to CSV"),
	),
	CopySegment: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy segment summary"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.NextSegment,
		k.PrevSegment,
		k.PlotDown,
		k.PlotUp,
		k.FilterToggle,
		k.ZoomDrawer,
		k.ZoomReset,
		k.MarkMode,
		k.NextMark,
		k.PrevMark,
		k.ToggleLabel,
		k.Export,
		k.CopySegment,
		k.OpenHelp,
	}
}
