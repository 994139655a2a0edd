package testfixtures

import (
	"github.com/mark3labs/copywiz/internal/copyengine"
	"github.com/mark3labs/copywiz/internal/state"
)

// Fixed test values
const (
	FixedClientName = "Acme Corp"
	FixedIndustry   = "SaaS"
	FixedAudience   = "Small Business Owners"
	FixedWebsite    = "https://acme.com"
	FixedStrategy   = "Focus on automation pain points"
)

// FixedBrief returns the brief built from the fixed values.
func FixedBrief() copyengine.Brief {
	return copyengine.Brief{
		ClientName: FixedClientName,
		Industry:   FixedIndustry,
		Audience:   FixedAudience,
		Website:    FixedWebsite,
		Strategy:   FixedStrategy,
	}
}

// FourVariations returns one variation per hook, in service order.
func FourVariations() []copyengine.Variation {
	return []copyengine.Variation{
		{
			ID:       1,
			HookType: "Shot in the Dark",
			Subject:  "Bit of a long shot, Acme",
			Body:     "Hi there,\n\nI noticed Acme is still routing invoices by hand.",
			PS:       "P.S. Happy to send a two-minute teardown.",
		},
		{
			ID:       2,
			HookType: "Clarity Gap",
			Subject:  "Your homepage says two things",
			Body:     "Hi there,\n\nYour hero promises speed while your pricing promises control.",
			PS:       "P.S. I sketched a one-line fix.",
		},
		{
			ID:       3,
			HookType: "Math Problem",
			Subject:  "12 hours a week",
			Body:     "Hi there,\n\nTwelve hours of manual entry is a full-time hire by spring.",
			PS:       "P.S. The calculator is attached.",
		},
		{
			ID:       4,
			HookType: "Anti-Pitch",
			Subject:  "Not a pitch",
			Body:     "Hi there,\n\nYou probably do not need us yet.",
			PS:       "P.S. When you do, you will know.",
		},
	}
}

// EmptyWizard returns a wizard on the first step.
func EmptyWizard() *state.Wizard {
	return state.New()
}

// WizardAt returns a wizard on step with every data field filled in.
func WizardAt(step int) *state.Wizard {
	w := &state.Wizard{
		Step: step,
		Onboarding: state.Onboarding{
			ClientName: FixedClientName,
			Industry:   FixedIndustry,
			Audience:   FixedAudience,
		},
		Website:  FixedWebsite,
		Strategy: FixedStrategy,
	}
	if step == state.StepResult {
		w.SetVariations(FourVariations())
	}
	return w
}
