package wizard

import (
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/copywiz/internal/synthesis"
	"github.com/mark3labs/copywiz/internal/tui/theme"
)

// SynthesisStep shows the spinner and status line of the running attempt.
type SynthesisStep struct {
	orch     *synthesis.Orchestrator
	spinner  spinner.Model
	endpoint string
	width    int
	height   int
}

// NewSynthesisStep builds the step around the orchestrator.
func NewSynthesisStep(orch *synthesis.Orchestrator, endpoint string) *SynthesisStep {
	s := theme.Current().S()
	return &SynthesisStep{
		orch: orch,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(s.Spinner),
		),
		endpoint: endpoint,
		width:    60,
		height:   10,
	}
}

// Init starts exactly one synthesis attempt and the spinner.
func (ss *SynthesisStep) Init() tea.Cmd {
	return tea.Batch(ss.orch.Start(), ss.spinner.Tick)
}

// SetSize updates the dimensions for the step.
func (ss *SynthesisStep) SetSize(width, height int) {
	ss.width = width
	ss.height = height
}

// Update forwards spinner ticks. Key input is ignored while synthesizing.
func (ss *SynthesisStep) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(spinner.TickMsg); ok {
		if ss.orch.Phase() == synthesis.PhaseFailed {
			return nil
		}
		var cmd tea.Cmd
		ss.spinner, cmd = ss.spinner.Update(msg)
		return cmd
	}
	return nil
}

// View renders the synthesis step.
func (ss *SynthesisStep) View() string {
	s := theme.Current().S()

	lines := []string{}
	if ss.orch.Phase() == synthesis.PhaseFailed {
		lines = append(lines,
			s.Title.Render("Channeling Copy..."),
			"",
			s.Error.Render(synthesis.FailedStatus),
			s.Muted.Render("Make sure the Copy Engine is running at "+ss.endpoint),
		)
		if err := ss.orch.Err(); err != nil {
			lines = append(lines, s.Muted.Render(err.Error()))
		}
		lines = append(lines, "", renderHintBar("ctrl+c", "quit"))
	} else {
		lines = append(lines,
			ss.spinner.View(),
			"",
			s.Title.Render("Channeling Copy..."),
			"",
			s.Status.Render(ss.orch.Status()),
		)
	}

	return lipgloss.NewStyle().
		Width(ss.width).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
