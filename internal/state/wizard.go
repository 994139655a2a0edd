// Package state holds the single mutable wizard state for a copywiz run.
// Nothing here is persisted; the state lives as long as the program.
package state

import (
	"strings"
	"unicode/utf8"

	"github.com/mark3labs/copywiz/internal/copyengine"
)

// Step indices, in wizard order.
const (
	StepOnboarding = iota
	StepWebsite
	StepStrategy
	StepSynthesis
	StepResult

	// LastStep is the highest valid step index.
	LastStep = StepResult
)

// minStrategyLen is the exclusive lower bound on strategy notes length.
const minStrategyLen = 5

// Onboarding holds the client details from the first step.
type Onboarding struct {
	ClientName string
	Industry   string
	Audience   string
}

// Wizard is the wizard state. One instance is created per run and shared by
// pointer between the renderer and the dispatcher.
type Wizard struct {
	Step       int
	Onboarding Onboarding
	Website    string
	Strategy   string

	// Variations and ActiveVariation change together; see SetVariations and
	// ClearVariations.
	Variations      []copyengine.Variation
	ActiveVariation int
}

// New returns an empty wizard positioned on the first step.
func New() *Wizard {
	return &Wizard{Step: StepOnboarding}
}

// OnboardingValid reports whether client name and industry are both set.
// Audience is optional.
func OnboardingValid(o Onboarding) bool {
	return o.ClientName != "" && o.Industry != ""
}

// WebsiteValid is a minimal domain-shape check: non-empty and containing a dot.
func WebsiteValid(s string) bool {
	return s != "" && strings.Contains(s, ".")
}

// StrategyValid requires more than five characters of notes.
func StrategyValid(s string) bool {
	return utf8.RuneCountInString(s) > minStrategyLen
}

// CanAdvance reports whether the current data-entry step may be confirmed.
// Synthesis and Result never advance through confirmation.
func (w *Wizard) CanAdvance() bool {
	switch w.Step {
	case StepOnboarding:
		return OnboardingValid(w.Onboarding)
	case StepWebsite:
		return WebsiteValid(w.Website)
	case StepStrategy:
		return StrategyValid(w.Strategy)
	default:
		return false
	}
}

// Advance moves a data-entry step forward by one. It is a no-op returning
// false while the step's predicate is false.
func (w *Wizard) Advance() bool {
	if !w.CanAdvance() {
		return false
	}
	w.Step++
	return true
}

// Back returns to the previous data-entry step, keeping entered values.
func (w *Wizard) Back() bool {
	if w.Step != StepWebsite && w.Step != StepStrategy {
		return false
	}
	w.Step--
	return true
}

// SetVariations replaces the generated list and selects the first entry.
func (w *Wizard) SetVariations(vs []copyengine.Variation) {
	w.Variations = vs
	w.ActiveVariation = 0
}

// ClearVariations empties the generated list and resets the selection.
func (w *Wizard) ClearVariations() {
	w.Variations = nil
	w.ActiveVariation = 0
}

// EnterResult moves from Synthesis to Result. It does nothing on any other step.
func (w *Wizard) EnterResult() bool {
	if w.Step != StepSynthesis {
		return false
	}
	w.Step = StepResult
	return true
}

// Reroll returns from Result to Synthesis with the previous results dropped.
func (w *Wizard) Reroll() bool {
	if w.Step != StepResult {
		return false
	}
	w.Step = StepSynthesis
	w.ClearVariations()
	return true
}

// SelectVariation makes index i active when it is in range.
func (w *Wizard) SelectVariation(i int) bool {
	if i < 0 || i >= len(w.Variations) {
		return false
	}
	w.ActiveVariation = i
	return true
}

// Active returns the selected variation, or false when there is none.
func (w *Wizard) Active() (copyengine.Variation, bool) {
	if w.ActiveVariation < 0 || w.ActiveVariation >= len(w.Variations) {
		return copyengine.Variation{}, false
	}
	return w.Variations[w.ActiveVariation], true
}

// Brief builds the generation request payload from the collected fields.
func (w *Wizard) Brief() copyengine.Brief {
	return copyengine.Brief{
		ClientName: w.Onboarding.ClientName,
		Industry:   w.Onboarding.Industry,
		Audience:   w.Onboarding.Audience,
		Website:    w.Website,
		Strategy:   w.Strategy,
	}
}
