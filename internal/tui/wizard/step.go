package wizard

import tea "charm.land/bubbletea/v2"

// stepComponent is one built step view. The wizard discards it and builds a
// fresh one from state on every step transition.
type stepComponent interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
}
