package wizard

import (
	"strings"

	"github.com/mark3labs/copywiz/internal/tui/theme"
)

// renderHintBar renders a hint bar with the given key-description pairs.
// Example: renderHintBar("tab", "next field", "enter", "continue", "esc", "quit")
// Returns: "tab next field • enter continue • esc quit"
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}
	s := theme.Current().S()

	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + s.HintSeparator.Render("•") + " ")
		}
		b.WriteString(s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1]))
	}
	return b.String()
}

// renderField renders a labelled input, with the focus marker on the left.
func renderField(label, input string, focused bool) string {
	s := theme.Current().S()
	box := s.InputBlurred
	if focused {
		box = s.InputFocused
	}
	return s.Label.Render(label) + "\n" + box.Render(input)
}
