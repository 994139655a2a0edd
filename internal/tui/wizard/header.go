package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/copywiz/internal/tui/theme"
)

// segmentStatus is a header step's position relative to the current step.
type segmentStatus int

const (
	segmentPending segmentStatus = iota
	segmentActive
	segmentCompleted
)

func statusFor(ordinal, step int) segmentStatus {
	switch {
	case ordinal < step:
		return segmentCompleted
	case ordinal == step:
		return segmentActive
	default:
		return segmentPending
	}
}

// renderHeader draws the step tracker and progress bar for the data-entry
// steps. It is empty from Synthesis onward.
func renderHeader(step, width int) string {
	if step >= headerSteps {
		return ""
	}
	s := theme.Current().S()

	segments := make([]string, 0, headerSteps)
	for _, def := range Steps[:headerSteps] {
		label := glyph(def.Icon) + " " + def.Title
		switch statusFor(def.Ordinal, step) {
		case segmentCompleted:
			segments = append(segments, s.StepCompleted.Render("✓ "+def.Title))
		case segmentActive:
			segments = append(segments, s.StepActive.Render(label))
		default:
			segments = append(segments, s.StepPending.Render(label))
		}
	}
	sep := s.StepPending.Render("  ›  ")
	tracker := strings.Join(segments, sep)

	barWidth := width
	if barWidth < 10 {
		barWidth = 10
	}
	bar := renderProgressBar(Progress(step), barWidth)

	return lipgloss.JoinVertical(lipgloss.Left, tracker, bar)
}

// renderProgressBar draws a gold gradient filled to frac of width.
func renderProgressBar(frac float64, width int) string {
	t := theme.Current()
	s := t.S()

	filled := int(frac*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	var b strings.Builder
	colors := theme.Gradient(t.Primary, t.Tertiary, filled)
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("━"))
	}
	b.WriteString(s.ProgressEmpty.Render(strings.Repeat("─", width-filled)))
	return b.String()
}
