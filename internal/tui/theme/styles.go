package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	// Frame
	Container lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Label     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Status    lipgloss.Style
	Spinner   lipgloss.Style

	// Header
	StepPending    lipgloss.Style
	StepActive     lipgloss.Style
	StepCompleted  lipgloss.Style
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style

	// Inputs
	InputFocused lipgloss.Style
	InputBlurred lipgloss.Style

	// Buttons
	ButtonNormal   lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonFocused  lipgloss.Style

	// Result
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	EmailBlock  lipgloss.Style
	DiffInsert  lipgloss.Style
	DiffDelete  lipgloss.Style
	DiffHeader  lipgloss.Style

	// Hint bar
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	button := lipgloss.NewStyle().
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	return &Styles{
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BgOverlay)).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBase)).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Tertiary)),
		Spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		StepPending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		StepActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		StepCompleted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)),
		ProgressFilled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),
		ProgressEmpty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgSurface1)),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(t.Primary)).
			PaddingLeft(1),
		InputBlurred: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(t.BgSurface1)).
			PaddingLeft(1),

		ButtonNormal: button.
			Foreground(lipgloss.Color(t.FgBase)).
			Background(lipgloss.Color(t.BgSurface0)),
		ButtonDisabled: button.
			Foreground(lipgloss.Color(t.FgMuted)).
			Background(lipgloss.Color(t.BgMantle)),
		ButtonFocused: button.
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Primary)).
			Bold(true),

		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Primary)).
			Bold(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)).
			Background(lipgloss.Color(t.BgSurface0)).
			Padding(0, 1),
		EmailBlock: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BgSurface1)).
			Foreground(lipgloss.Color(t.FgBase)).
			Padding(0, 1),
		DiffInsert: lipgloss.NewStyle().
			Background(lipgloss.Color(t.DiffInsertBg)),
		DiffDelete: lipgloss.NewStyle().
			Background(lipgloss.Color(t.DiffDeleteBg)),
		DiffHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)).
			Bold(true),

		HintKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)).
			Bold(true),
		HintDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgSurface1)),
	}
}
