// Package wizard is the full-screen copywiz TUI: five steps driven by one
// state.Wizard, rebuilt from state on every step transition.
package wizard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/copywiz/internal/copyengine"
	"github.com/mark3labs/copywiz/internal/logger"
	"github.com/mark3labs/copywiz/internal/state"
	"github.com/mark3labs/copywiz/internal/synthesis"
	"github.com/mark3labs/copywiz/internal/tui/theme"
)

// Options configures the wizard.
type Options struct {
	Endpoint       string // shown in the failure hint
	Sender         string
	RenderMarkdown bool
	ExportDir      string
	ExportTemplate string
	WorkDir        string
	CopyAck        time.Duration
	Timing         synthesis.Timing // zero means synthesis.DefaultTiming
	Context        context.Context  // parent for generate requests
}

// WizardModel is the root BubbleTea model.
type WizardModel struct {
	wizard *state.Wizard
	orch   *synthesis.Orchestrator
	opts   Options

	current stepComponent
	built   int // step the current component was built for, -1 before Init
	gen     int // bumped on every rebuild

	width    int
	height   int
	quitting bool
}

// New creates a wizard over a fresh state.
func New(client copyengine.Client, opts Options) *WizardModel {
	return NewWithState(client, state.New(), opts)
}

// NewWithState creates a wizard over an existing state.
func NewWithState(client copyengine.Client, w *state.Wizard, opts Options) *WizardModel {
	if opts.Timing == (synthesis.Timing{}) {
		opts.Timing = synthesis.DefaultTiming()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	return &WizardModel{
		wizard: w,
		orch: synthesis.New(client, w,
			synthesis.WithTiming(opts.Timing),
			synthesis.WithContext(opts.Context),
		),
		opts:   opts,
		built:  -1,
		width:  80,
		height: 24,
	}
}

// Run creates a standalone BubbleTea program and runs the wizard until the
// user quits. It returns the final state.
func Run(ctx context.Context, client copyengine.Client, opts Options) (*state.Wizard, error) {
	opts.Context = ctx
	m := New(client, opts)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wizModel, ok := finalModel.(*WizardModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	return wizModel.wizard, nil
}

// Init builds the first step.
func (m *WizardModel) Init() tea.Cmd {
	return m.rebuild()
}

// State returns the wizard state.
func (m *WizardModel) State() *state.Wizard {
	return m.wizard
}

// Orchestrator returns the synthesis orchestrator.
func (m *WizardModel) Orchestrator() *synthesis.Orchestrator {
	return m.orch
}

// Quitting reports whether the user asked to leave.
func (m *WizardModel) Quitting() bool {
	return m.quitting
}

// Update handles messages for the wizard. Whenever the step changes the
// current step component is discarded and rebuilt from state.
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.dispatch(msg)
	if !m.quitting && m.wizard.Step != m.built {
		cmd = tea.Batch(cmd, m.rebuild())
	}
	return m, cmd
}

func (m *WizardModel) dispatch(msg tea.Msg) tea.Cmd {
	if g, ok := msg.(generational); ok && g.generation() != m.gen {
		logger.Debug("Dropping %T from replaced step", msg)
		return nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m.quit()
		case "esc":
			switch m.wizard.Step {
			case state.StepOnboarding:
				return m.quit()
			case state.StepWebsite, state.StepStrategy:
				m.wizard.Back()
				return nil
			}
		case "q":
			if m.wizard.Step == state.StepResult {
				return m.quit()
			}
		}

	case ContinueMsg:
		if !m.wizard.Advance() {
			logger.Debug("Continue blocked on step %d", m.wizard.Step)
		}
		return nil

	case RerollMsg:
		m.wizard.Reroll()
		return nil

	case synthesis.PhraseMsg, synthesis.ResponseMsg, synthesis.DoneMsg:
		return m.orch.Update(msg)
	}

	if m.current == nil {
		return nil
	}
	return m.current.Update(msg)
}

// rebuild discards the current step component and builds the one for the
// current step from state.
func (m *WizardModel) rebuild() tea.Cmd {
	m.gen++
	m.built = m.wizard.Step

	switch m.wizard.Step {
	case state.StepOnboarding:
		m.current = NewOnboardingStep(m.wizard, m.gen)
	case state.StepWebsite:
		m.current = NewWebsiteStep(m.wizard, m.gen)
	case state.StepStrategy:
		m.current = NewStrategyStep(m.wizard, m.gen)
	case state.StepSynthesis:
		m.current = NewSynthesisStep(m.orch, m.opts.Endpoint)
	case state.StepResult:
		m.current = NewResultStep(m.wizard, m.gen, ResultOptions{
			Sender:         m.opts.Sender,
			RenderMarkdown: m.opts.RenderMarkdown,
			ExportDir:      m.opts.ExportDir,
			ExportTemplate: m.opts.ExportTemplate,
			WorkDir:        m.opts.WorkDir,
			CopyAck:        m.opts.CopyAck,
		})
	default:
		logger.Error("Invalid wizard step %d", m.wizard.Step)
		m.current = nil
		return nil
	}

	logger.Debug("Built step %d (%s)", m.wizard.Step, Steps[m.wizard.Step].Title)
	m.resize()
	return m.current.Init()
}

// contentWidth is the usable width inside the frame.
func (m *WizardModel) contentWidth() int {
	w := m.width - 8
	if w > 96 {
		w = 96
	}
	if w < 40 {
		w = 40
	}
	return w
}

func (m *WizardModel) resize() {
	if m.current == nil {
		return
	}
	h := m.height - 8
	if h < 10 {
		h = 10
	}
	m.current.SetSize(m.contentWidth(), h)
}

func (m *WizardModel) quit() tea.Cmd {
	m.orch.Stop()
	m.quitting = true
	return tea.Quit
}

// render returns the frame content as a string.
func (m *WizardModel) render() string {
	if m.current == nil {
		return ""
	}
	s := theme.Current().S()

	var sections []string
	if header := renderHeader(m.wizard.Step, m.contentWidth()); header != "" {
		sections = append(sections, header, "")
	}
	sections = append(sections, m.current.View())

	frame := s.Container.Width(m.contentWidth() + 4).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}

// View renders the wizard UI.
func (m *WizardModel) View() tea.View {
	var view tea.View
	view.AltScreen = true

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(m.render()).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}
