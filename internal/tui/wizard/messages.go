package wizard

import tea "charm.land/bubbletea/v2"

// ContinueMsg asks the wizard to confirm the data-entry step that sent it.
// The wizard advances only when the step's gate is open.
type ContinueMsg struct {
	gen int
}

// RerollMsg asks the wizard to discard the results and synthesize again.
type RerollMsg struct {
	gen int
}

// StrategyEditedMsg is sent when the external editor returns with new notes.
type StrategyEditedMsg struct {
	gen     int
	Content string
}

// copyAckExpiredMsg reverts the copy label of the result step that sent it.
type copyAckExpiredMsg struct {
	gen int
	seq int
}

// exportDoneMsg carries the outcome of an export and its hooks.
type exportDoneMsg struct {
	gen     int
	Path    string
	Err     error
	HookErr error
}

// statusExpiredMsg clears a transient result-step status line.
type statusExpiredMsg struct {
	gen int
	seq int
}

// generational is implemented by messages that belong to one built step.
// The wizard drops them once that step has been replaced.
type generational interface {
	generation() int
}

func (m ContinueMsg) generation() int       { return m.gen }
func (m RerollMsg) generation() int         { return m.gen }
func (m StrategyEditedMsg) generation() int { return m.gen }
func (m copyAckExpiredMsg) generation() int { return m.gen }
func (m exportDoneMsg) generation() int     { return m.gen }
func (m statusExpiredMsg) generation() int  { return m.gen }

// continueCmd confirms the step built as generation gen.
func continueCmd(gen int) tea.Cmd {
	return func() tea.Msg { return ContinueMsg{gen: gen} }
}
