package wizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/copywiz/internal/state"
	"github.com/mark3labs/copywiz/internal/tui/theme"
)

// Onboarding field indices, in focus order.
const (
	fieldClient = iota
	fieldIndustry
	fieldAudience
	fieldCount
)

// OnboardingStep collects the client name, industry and audience.
type OnboardingStep struct {
	wizard *state.Wizard
	gen    int
	inputs [fieldCount]textinput.Model
	focus  int
	width  int
}

// NewOnboardingStep builds the step from the current state values.
func NewOnboardingStep(w *state.Wizard, gen int) *OnboardingStep {
	o := &OnboardingStep{
		wizard: w,
		gen:    gen,
		width:  60,
	}
	o.inputs[fieldClient] = newTextInput("e.g. Acme Corp", w.Onboarding.ClientName)
	o.inputs[fieldIndustry] = newTextInput("e.g. SaaS", w.Onboarding.Industry)
	o.inputs[fieldAudience] = newTextInput("e.g. Small Business Owners", w.Onboarding.Audience)
	return o
}

// Init focuses the first input.
func (o *OnboardingStep) Init() tea.Cmd {
	return o.setFocus(fieldClient)
}

// SetSize updates the dimensions for the step.
func (o *OnboardingStep) SetSize(width, height int) {
	o.width = width
	for i := range o.inputs {
		o.inputs[i].SetWidth(width - 4)
	}
}

// Update handles messages for the onboarding step.
func (o *OnboardingStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			return o.setFocus((o.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return o.setFocus((o.focus + fieldCount - 1) % fieldCount)
		case "enter":
			return continueCmd(o.gen)
		}
	}

	var cmd tea.Cmd
	o.inputs[o.focus], cmd = o.inputs[o.focus].Update(msg)
	o.bind()
	return cmd
}

// bind copies the raw input values into state.
func (o *OnboardingStep) bind() {
	o.wizard.Onboarding.ClientName = o.inputs[fieldClient].Value()
	o.wizard.Onboarding.Industry = o.inputs[fieldIndustry].Value()
	o.wizard.Onboarding.Audience = o.inputs[fieldAudience].Value()
}

// setFocus moves focus to input i.
func (o *OnboardingStep) setFocus(i int) tea.Cmd {
	for j := range o.inputs {
		o.inputs[j].Blur()
	}
	o.focus = i
	return o.inputs[i].Focus()
}

// Focused returns the index of the focused input.
func (o *OnboardingStep) Focused() int {
	return o.focus
}

// CanContinue reports whether the Continue control is enabled.
func (o *OnboardingStep) CanContinue() bool {
	return state.OnboardingValid(o.wizard.Onboarding)
}

// View renders the onboarding step.
func (o *OnboardingStep) View() string {
	s := theme.Current().S()
	labels := [fieldCount]string{"Client Name", "Industry", "Target Audience"}

	var b strings.Builder
	b.WriteString(s.Title.Render("Attune to Client"))
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render("Tell us about the entity we're channeling copy for."))
	b.WriteString("\n\n")

	for i := range o.inputs {
		b.WriteString(renderField(labels[i], o.inputs[i].View(), i == o.focus))
		b.WriteString("\n\n")
	}

	bar := NewButtonBar([]Button{continueButton("Continue →", o.CanContinue())})
	bar.SetWidth(o.width)
	b.WriteString(bar.Render())
	b.WriteString("\n\n")
	b.WriteString(renderHintBar("tab", "next field", "enter", "continue", "esc", "quit"))
	return b.String()
}
