package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/copywiz/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// Button represents a single button in the button bar.
type Button struct {
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with consistent styling.
type ButtonBar struct {
	buttons []Button
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Buttons returns the bar's buttons.
func (b *ButtonBar) Buttons() []Button {
	return b.buttons
}

// Render renders the button bar right-aligned within its width.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}
	s := theme.Current().S()

	rendered := make([]string, 0, len(b.buttons))
	for _, btn := range b.buttons {
		switch btn.State {
		case ButtonDisabled:
			rendered = append(rendered, s.ButtonDisabled.Render(btn.Label))
		case ButtonFocused:
			rendered = append(rendered, s.ButtonFocused.Render(btn.Label))
		default:
			rendered = append(rendered, s.ButtonNormal.Render(btn.Label))
		}
	}

	return lipgloss.PlaceHorizontal(b.width, lipgloss.Right, strings.Join(rendered, ""))
}

// continueButton is the gated Continue control of the data-entry steps.
func continueButton(label string, enabled bool) Button {
	if !enabled {
		return Button{Label: label, State: ButtonDisabled}
	}
	return Button{Label: label, State: ButtonFocused}
}

// CreateBackNextButtons creates the standard Back/Next button set.
// backEnabled: whether Back button is enabled
// nextEnabled: whether Next button is enabled (false if step invalid)
func CreateBackNextButtons(backEnabled, nextEnabled bool, nextLabel string) []Button {
	backState := ButtonNormal
	if !backEnabled {
		backState = ButtonDisabled
	}
	return []Button{
		{Label: "← Back", State: backState},
		continueButton(nextLabel, nextEnabled),
	}
}
