package synthesis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mark3labs/copywiz/internal/copyengine"
	"github.com/mark3labs/copywiz/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu         sync.Mutex
	calls      []copyengine.Brief
	requestIDs []string
	variations []copyengine.Variation
	err        error
}

func (f *fakeClient) Generate(_ context.Context, requestID string, brief copyengine.Brief) ([]copyengine.Variation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, brief)
	f.requestIDs = append(f.requestIDs, requestID)
	if f.err != nil {
		return nil, f.err
	}
	return f.variations, nil
}

func (f *fakeClient) Health(context.Context) error { return nil }

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func fastTiming() Timing {
	return Timing{Phrase: time.Millisecond, Done: time.Millisecond}
}

func synthesisWizard() *state.Wizard {
	return &state.Wizard{
		Step: state.StepSynthesis,
		Onboarding: state.Onboarding{
			ClientName: "Acme Corp",
			Industry:   "SaaS",
			Audience:   "Founders",
		},
		Website:  "acme.com",
		Strategy: "Lead with automation",
	}
}

func fourVariations() []copyengine.Variation {
	return []copyengine.Variation{
		{HookType: "Shot in the Dark", Subject: "A", Body: "a", PS: "pa"},
		{HookType: "Clarity Gap", Subject: "B", Body: "b", PS: "pb"},
		{HookType: "Math Problem", Subject: "C", Body: "c", PS: "pc"},
		{HookType: "Anti-Pitch", Subject: "D", Body: "d", PS: "pd"},
	}
}

func TestNew_Idle(t *testing.T) {
	o := New(&fakeClient{}, state.New())
	assert.Equal(t, PhaseIdle, o.Phase())
	assert.Equal(t, IdleStatus, o.Status())
	assert.Equal(t, uint64(0), o.Attempt())
	assert.NoError(t, o.Err())
}

func TestPhrases_AllShownBeforeRequest(t *testing.T) {
	client := &fakeClient{variations: fourVariations()}
	w := synthesisWizard()
	o := New(client, w, WithTiming(fastTiming()))

	cmd := o.Start()
	require.NotNil(t, cmd)
	require.Equal(t, PhaseAnnouncing, o.Phase())

	var seen []string
	seen = append(seen, o.Status())
	for i := 0; i < len(Phrases); i++ {
		msg := cmd()
		phrase, ok := msg.(PhraseMsg)
		require.True(t, ok, "expected PhraseMsg, got %T", msg)
		require.Equal(t, i, phrase.Index)
		require.Equal(t, 0, client.callCount(), "no request before phrase %d finishes", i)

		cmd = o.Update(phrase)
		require.NotNil(t, cmd)
		if i < len(Phrases)-1 {
			seen = append(seen, o.Status())
		}
	}

	require.Equal(t, Phrases, seen)
	require.Equal(t, PhaseAwaitingResponse, o.Phase())

	msg := cmd()
	require.IsType(t, ResponseMsg{}, msg)
	require.Equal(t, 1, client.callCount(), "exactly one request")
	assert.Equal(t, w.Brief(), client.calls[0])
	assert.Equal(t, o.RequestID(), client.requestIDs[0])
}

func runToResponse(t *testing.T, o *Orchestrator) ResponseMsg {
	t.Helper()
	cmd := o.Start()
	for i := 0; i < len(Phrases); i++ {
		cmd = o.Update(cmd())
		require.NotNil(t, cmd)
	}
	msg, ok := cmd().(ResponseMsg)
	require.True(t, ok)
	return msg
}

func TestSuccess_SetsVariationsThenAdvances(t *testing.T) {
	client := &fakeClient{variations: fourVariations()}
	w := synthesisWizard()
	w.ActiveVariation = 3
	o := New(client, w, WithTiming(fastTiming()))

	resp := runToResponse(t, o)
	cmd := o.Update(resp)
	require.NotNil(t, cmd)

	assert.Equal(t, PhaseSucceeded, o.Phase())
	assert.Equal(t, DoneStatus, o.Status())
	assert.Len(t, w.Variations, 4)
	assert.Equal(t, 0, w.ActiveVariation)
	assert.Equal(t, state.StepSynthesis, w.Step, "still on synthesis during Done! dwell")

	done := cmd()
	require.IsType(t, DoneMsg{}, done)
	assert.Nil(t, o.Update(done))
	assert.Equal(t, state.StepResult, w.Step)
	assert.Equal(t, PhaseIdle, o.Phase())
}

func TestSuccess_EmptyListStillAdvances(t *testing.T) {
	client := &fakeClient{variations: []copyengine.Variation{}}
	w := synthesisWizard()
	o := New(client, w, WithTiming(fastTiming()))

	cmd := o.Update(runToResponse(t, o))
	require.NotNil(t, cmd)
	o.Update(cmd())

	assert.Equal(t, state.StepResult, w.Step)
	assert.Empty(t, w.Variations)
}

func TestFailure_StaysOnSynthesis(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"status", &copyengine.StatusError{Code: 500, Message: "boom"}},
		{"malformed", copyengine.ErrMalformed},
		{"transport", errors.New("send request: connection refused")},
		{"deadline", context.DeadlineExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{err: tt.err}
			w := synthesisWizard()
			o := New(client, w, WithTiming(fastTiming()))

			cmd := o.Update(runToResponse(t, o))
			assert.Nil(t, cmd, "no retry and no advance")
			assert.Equal(t, PhaseFailed, o.Phase())
			assert.Equal(t, FailedStatus, o.Status())
			assert.ErrorIs(t, o.Err(), tt.err)
			assert.Equal(t, state.StepSynthesis, w.Step)
			assert.Empty(t, w.Variations)
			assert.Equal(t, 1, client.callCount())
		})
	}
}

func TestStaleMessagesDropped(t *testing.T) {
	client := &fakeClient{variations: fourVariations()}
	w := synthesisWizard()
	o := New(client, w, WithTiming(fastTiming()))

	first := runToResponse(t, o)

	// A new attempt supersedes the first before its response is handled.
	o.Start()
	second := o.Attempt()
	require.Greater(t, second, first.Attempt)

	assert.Nil(t, o.Update(first))
	assert.Empty(t, w.Variations, "stale response must not touch state")
	assert.Equal(t, PhaseAnnouncing, o.Phase())

	assert.Nil(t, o.Update(PhraseMsg{Attempt: first.Attempt, Index: 0}))
	assert.Equal(t, Phrases[0], o.Status())

	assert.Nil(t, o.Update(DoneMsg{Attempt: first.Attempt}))
	assert.Equal(t, state.StepSynthesis, w.Step)
}

func TestOutOfOrderPhraseIgnored(t *testing.T) {
	o := New(&fakeClient{}, synthesisWizard(), WithTiming(fastTiming()))
	o.Start()

	assert.Nil(t, o.Update(PhraseMsg{Attempt: o.Attempt(), Index: 2}))
	assert.Equal(t, Phrases[0], o.Status())
	assert.Nil(t, o.Update(ResponseMsg{Attempt: o.Attempt()}), "no response accepted while announcing")
	assert.Equal(t, PhaseAnnouncing, o.Phase())
}

func TestStop_AbandonsAttempt(t *testing.T) {
	client := &fakeClient{variations: fourVariations()}
	w := synthesisWizard()
	o := New(client, w, WithTiming(fastTiming()))

	resp := runToResponse(t, o)
	o.Stop()
	assert.Equal(t, PhaseIdle, o.Phase())
	assert.Equal(t, IdleStatus, o.Status())

	assert.Nil(t, o.Update(resp))
	assert.Empty(t, w.Variations)
}

func TestStop_CancelsInFlightRequest(t *testing.T) {
	started := make(chan struct{})
	blocking := &blockingClient{started: started}
	o := New(blocking, synthesisWizard(), WithTiming(fastTiming()))

	cmd := o.Start()
	for i := 0; i < len(Phrases); i++ {
		cmd = o.Update(cmd())
	}

	result := make(chan ResponseMsg, 1)
	go func() { result <- cmd().(ResponseMsg) }()

	<-started
	o.Stop()

	select {
	case msg := <-result:
		assert.ErrorIs(t, msg.Err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("request was not cancelled")
	}
}

type blockingClient struct {
	started chan struct{}
}

func (b *blockingClient) Generate(ctx context.Context, _ string, _ copyengine.Brief) ([]copyengine.Variation, error) {
	close(b.started)
	<-ctx.Done()
	return nil, ctx.Err()
}

func (b *blockingClient) Health(context.Context) error { return nil }

func TestRetryAfterFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("down")}
	w := synthesisWizard()
	o := New(client, w, WithTiming(fastTiming()))

	o.Update(runToResponse(t, o))
	require.Equal(t, PhaseFailed, o.Phase())

	client.err = nil
	client.variations = fourVariations()
	cmd := o.Update(runToResponse(t, o))
	require.NotNil(t, cmd)
	assert.NoError(t, o.Err())
	assert.Equal(t, PhaseSucceeded, o.Phase())
	assert.NotEqual(t, client.requestIDs[0], client.requestIDs[1])
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "announcing", PhaseAnnouncing.String())
	assert.Equal(t, "awaiting-response", PhaseAwaitingResponse.String())
	assert.Equal(t, "succeeded", PhaseSucceeded.String())
	assert.Equal(t, "failed", PhaseFailed.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

func TestDefaultTiming(t *testing.T) {
	timing := DefaultTiming()
	assert.Equal(t, 800*time.Millisecond, timing.Phrase)
	assert.Equal(t, 500*time.Millisecond, timing.Done)
	assert.Equal(t, 3200*time.Millisecond, time.Duration(len(Phrases))*timing.Phrase, "all phrases shown before the request")

	o := New(&fakeClient{}, synthesisWizard())
	assert.Equal(t, timing, o.Timing())

	o = New(&fakeClient{}, synthesisWizard(), WithTiming(fastTiming()))
	assert.Equal(t, fastTiming(), o.Timing())
}
