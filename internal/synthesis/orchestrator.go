// Package synthesis runs one generation attempt for the wizard: a fixed
// sequence of status phrases, a single request to the copy engine, then a
// short "Done!" dwell before the wizard moves on to the results.
//
// The orchestrator is driven by Bubbletea messages. Every message it emits
// carries the attempt number that produced it, and messages from any other
// attempt are ignored.
package synthesis

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/copywiz/internal/copyengine"
	"github.com/mark3labs/copywiz/internal/logger"
	"github.com/mark3labs/copywiz/internal/state"
)

// Status lines shown outside the phrase sequence.
const (
	IdleStatus   = "Gazing into the void..."
	DoneStatus   = "Done!"
	FailedStatus = "Failed to connect to Copy Engine."
)

// Phrases are shown in order, one per dwell, before the request is sent.
var Phrases = []string{
	"Sensing client vibrations...",
	"Consulting the strategy oracles...",
	"Divining the perfect hooks...",
	"Manifesting 4 realities...",
}

// Phase is the orchestrator's position within an attempt.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAnnouncing
	PhaseAwaitingResponse
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnnouncing:
		return "announcing"
	case PhaseAwaitingResponse:
		return "awaiting-response"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Timing holds the dwell durations.
type Timing struct {
	Phrase time.Duration // per phrase
	Done   time.Duration // "Done!" before advancing
}

// DefaultTiming returns the production dwell durations.
func DefaultTiming() Timing {
	return Timing{
		Phrase: 800 * time.Millisecond,
		Done:   500 * time.Millisecond,
	}
}

// PhraseMsg reports that the dwell for Phrases[Index] has elapsed.
type PhraseMsg struct {
	Attempt uint64
	Index   int
}

// ResponseMsg carries the outcome of the generate request.
type ResponseMsg struct {
	Attempt    uint64
	Variations []copyengine.Variation
	Err        error
}

// DoneMsg reports that the "Done!" dwell has elapsed.
type DoneMsg struct {
	Attempt uint64
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTiming overrides the dwell durations.
func WithTiming(t Timing) Option {
	return func(o *Orchestrator) {
		o.timing = t
	}
}

// WithContext sets the parent context for requests.
func WithContext(ctx context.Context) Option {
	return func(o *Orchestrator) {
		o.ctx = ctx
	}
}

// Orchestrator sequences a synthesis attempt against the wizard state.
type Orchestrator struct {
	client copyengine.Client
	wizard *state.Wizard
	timing Timing
	ctx    context.Context

	attempt   uint64
	requestID string
	phase     Phase
	phrase    int
	status    string
	err       error
	cancel    context.CancelFunc
}

// New creates an idle orchestrator for the given wizard state.
func New(client copyengine.Client, wizard *state.Wizard, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		client: client,
		wizard: wizard,
		timing: DefaultTiming(),
		ctx:    context.Background(),
		phase:  PhaseIdle,
		phrase: -1,
		status: IdleStatus,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Start begins a new attempt and returns the first dwell timer. Any attempt
// still in flight is abandoned.
func (o *Orchestrator) Start() tea.Cmd {
	o.Stop()

	o.attempt++
	o.requestID = copyengine.NewRequestID()
	o.phase = PhaseAnnouncing
	o.phrase = 0
	o.status = Phrases[0]
	o.err = nil

	logger.Debug("Synthesis attempt %d started (request=%s)", o.attempt, o.requestID)
	return o.dwell(0)
}

// Stop abandons the current attempt. Pending timers and the in-flight
// response become stale and are dropped when they arrive.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	if o.phase == PhaseAnnouncing || o.phase == PhaseAwaitingResponse {
		logger.Debug("Synthesis attempt %d abandoned", o.attempt)
		o.attempt++
		o.phase = PhaseIdle
		o.status = IdleStatus
	}
}

// Update advances the attempt for messages that belong to it. Messages from
// other attempts, or arriving in the wrong phase, return nil.
func (o *Orchestrator) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PhraseMsg:
		if msg.Attempt != o.attempt || o.phase != PhaseAnnouncing || msg.Index != o.phrase {
			return nil
		}
		next := msg.Index + 1
		if next < len(Phrases) {
			o.phrase = next
			o.status = Phrases[next]
			return o.dwell(next)
		}
		o.phase = PhaseAwaitingResponse
		return o.request()

	case ResponseMsg:
		if msg.Attempt != o.attempt || o.phase != PhaseAwaitingResponse {
			logger.Debug("Dropping stale synthesis response for attempt %d", msg.Attempt)
			return nil
		}
		o.cancel = nil
		if msg.Err != nil {
			logger.Error("Synthesis attempt %d failed: %v", o.attempt, msg.Err)
			o.phase = PhaseFailed
			o.status = FailedStatus
			o.err = msg.Err
			return nil
		}
		o.wizard.SetVariations(msg.Variations)
		o.phase = PhaseSucceeded
		o.status = DoneStatus
		attempt := o.attempt
		return tea.Tick(o.timing.Done, func(time.Time) tea.Msg {
			return DoneMsg{Attempt: attempt}
		})

	case DoneMsg:
		if msg.Attempt != o.attempt || o.phase != PhaseSucceeded {
			return nil
		}
		o.wizard.EnterResult()
		o.phase = PhaseIdle
		o.phrase = -1
		o.status = IdleStatus
	}
	return nil
}

// dwell schedules the end of phrase i for the current attempt.
func (o *Orchestrator) dwell(i int) tea.Cmd {
	attempt := o.attempt
	return tea.Tick(o.timing.Phrase, func(time.Time) tea.Msg {
		return PhraseMsg{Attempt: attempt, Index: i}
	})
}

// request sends exactly one generate call with the fields as they are now.
func (o *Orchestrator) request() tea.Cmd {
	ctx, cancel := context.WithCancel(o.ctx)
	o.cancel = cancel

	attempt := o.attempt
	requestID := o.requestID
	brief := o.wizard.Brief()
	client := o.client

	return func() tea.Msg {
		defer cancel()
		variations, err := client.Generate(ctx, requestID, brief)
		return ResponseMsg{Attempt: attempt, Variations: variations, Err: err}
	}
}

// Attempt returns the current attempt number. Zero means none has started.
func (o *Orchestrator) Attempt() uint64 {
	return o.attempt
}

// RequestID returns the X-Request-ID of the current attempt.
func (o *Orchestrator) RequestID() string {
	return o.requestID
}

// Phase returns the current phase.
func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// Status returns the line to display under the spinner.
func (o *Orchestrator) Status() string {
	return o.status
}

// Err returns the failure of the last attempt, if it failed.
func (o *Orchestrator) Err() error {
	return o.err
}

// Timing returns the dwell durations in use.
func (o *Orchestrator) Timing() Timing {
	return o.timing
}
