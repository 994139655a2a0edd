package theme

import (
	"sort"
	"sync"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // lipgloss.Color is a string type
	Secondary string
	Tertiary  string

	// Background hierarchy (dark→light)
	BgBase     string
	BgMantle   string
	BgSurface0 string
	BgSurface1 string
	BgOverlay  string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	// Status colors
	Success string
	Warning string
	Error   string
	Info    string

	// Diff colors
	DiffInsertBg string
	DiffDeleteBg string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

// DefaultName is the theme used when none is configured.
const DefaultName = "gilded"

var registry = map[string]func() *Theme{
	"gilded":           NewGilded,
	"catppuccin-mocha": NewCatppuccinMocha,
}

var (
	currentMu sync.RWMutex
	current   = NewGilded()
)

// Current returns the active theme.
func Current() *Theme {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// Set activates the named theme. Unknown names leave the current theme
// unchanged and return false.
func Set(name string) bool {
	ctor, ok := registry[name]
	if !ok {
		return false
	}
	currentMu.Lock()
	current = ctor()
	currentMu.Unlock()
	return true
}

// Names lists the available themes, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}
