package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is what the model holds while a modal (export path prompt, key
// help) is on screen; keys route to the dialog until IsVisible goes false.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
