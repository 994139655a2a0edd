package wizard

import "github.com/mark3labs/copywiz/internal/state"

// StepDefinition describes one wizard step for the header.
type StepDefinition struct {
	Ordinal int
	Title   string
	Icon    string
}

// Steps is the fixed, ordered step registry.
var Steps = [...]StepDefinition{
	{Ordinal: state.StepOnboarding, Title: "Attune", Icon: "user"},
	{Ordinal: state.StepWebsite, Title: "Aura", Icon: "globe"},
	{Ordinal: state.StepStrategy, Title: "Imprint", Icon: "file-text"},
	{Ordinal: state.StepSynthesis, Title: "Channel", Icon: "sparkles"},
	{Ordinal: state.StepResult, Title: "Manifest", Icon: "check-circle-2"},
}

// headerSteps is how many leading steps appear in the header. Synthesis and
// Result run without it.
const headerSteps = len(Steps) - 2

// glyphs stands in for the icon names in a terminal.
var glyphs = map[string]string{
	"user":           "◉",
	"globe":          "◎",
	"file-text":      "≡",
	"sparkles":       "✦",
	"check-circle-2": "✓",
}

// glyph returns the terminal symbol for an icon name.
func glyph(icon string) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return "•"
}

// Progress returns the header fill for step, in [0, 1].
func Progress(step int) float64 {
	if step <= 0 {
		return 0
	}
	if step >= headerSteps {
		return 1
	}
	return float64(step) / float64(headerSteps)
}
