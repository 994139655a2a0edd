package wizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/copywiz/internal/state"
	"github.com/mark3labs/copywiz/internal/tui/theme"
)

// WebsiteStep collects the client's website.
type WebsiteStep struct {
	wizard *state.Wizard
	gen    int
	input  textinput.Model
	width  int
}

// NewWebsiteStep builds the step from the current state value.
func NewWebsiteStep(w *state.Wizard, gen int) *WebsiteStep {
	return &WebsiteStep{
		wizard: w,
		gen:    gen,
		input:  newTextInput("https://example.com", w.Website),
		width:  60,
	}
}

// Init focuses the input.
func (ws *WebsiteStep) Init() tea.Cmd {
	return ws.input.Focus()
}

// SetSize updates the dimensions for the step.
func (ws *WebsiteStep) SetSize(width, height int) {
	ws.width = width
	ws.input.SetWidth(width - 4)
}

// Update handles messages for the website step.
func (ws *WebsiteStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "enter" {
		return continueCmd(ws.gen)
	}

	var cmd tea.Cmd
	ws.input, cmd = ws.input.Update(msg)
	ws.wizard.Website = ws.input.Value()
	return cmd
}

// CanContinue reports whether the Analyze control is enabled.
func (ws *WebsiteStep) CanContinue() bool {
	return state.WebsiteValid(ws.wizard.Website)
}

// View renders the website step.
func (ws *WebsiteStep) View() string {
	s := theme.Current().S()

	var b strings.Builder
	b.WriteString(s.Title.Render("Read Brand Aura"))
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render("Enter the URL. We'll sense the brand voice and offerings."))
	b.WriteString("\n\n")
	b.WriteString(renderField("Website", "🔗 "+ws.input.View(), true))
	b.WriteString("\n\n")

	bar := NewButtonBar(CreateBackNextButtons(true, ws.CanContinue(), "Analyze →"))
	bar.SetWidth(ws.width)
	b.WriteString(bar.Render())
	b.WriteString("\n\n")
	b.WriteString(renderHintBar("enter", "analyze", "esc", "back"))
	return b.String()
}
