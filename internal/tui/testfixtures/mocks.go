// Package testfixtures provides mock implementations and test utilities for TUI testing.
//
// MockEngine stands in for the copy engine. It is thread-safe and records
// every call for assertions:
//
//	engine := testfixtures.NewMockEngine()
//	engine.SetVariations(testfixtures.FourVariations())
//	// drive the wizard...
//	require.Equal(t, 1, engine.GenerateCalls())
package testfixtures

import (
	"context"
	"sync"

	"github.com/mark3labs/copywiz/internal/copyengine"
)

// MockEngine is a mock implementation of copyengine.Client.
type MockEngine struct {
	mu sync.RWMutex

	variations  []copyengine.Variation
	generateErr error
	healthErr   error

	briefs     []copyengine.Brief
	requestIDs []string
	healthHits int
}

// NewMockEngine creates a mock that answers with four variations.
func NewMockEngine() *MockEngine {
	return &MockEngine{variations: FourVariations()}
}

// SetVariations sets the list returned by Generate.
func (m *MockEngine) SetVariations(vs []copyengine.Variation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.variations = vs
}

// SetGenerateError makes Generate fail with err. Nil restores success.
func (m *MockEngine) SetGenerateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generateErr = err
}

// SetHealthError makes Health fail with err.
func (m *MockEngine) SetHealthError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.healthErr = err
}

// Generate implements copyengine.Client.
func (m *MockEngine) Generate(ctx context.Context, requestID string, brief copyengine.Brief) ([]copyengine.Variation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.briefs = append(m.briefs, brief)
	m.requestIDs = append(m.requestIDs, requestID)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	out := make([]copyengine.Variation, len(m.variations))
	copy(out, m.variations)
	return out, nil
}

// Health implements copyengine.Client.
func (m *MockEngine) Health(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.healthHits++
	return m.healthErr
}

// GenerateCalls returns how many times Generate was called.
func (m *MockEngine) GenerateCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.briefs)
}

// HealthCalls returns how many times Health was called.
func (m *MockEngine) HealthCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthHits
}

// LastBrief returns the most recent brief passed to Generate.
func (m *MockEngine) LastBrief() (copyengine.Brief, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.briefs) == 0 {
		return copyengine.Brief{}, false
	}
	return m.briefs[len(m.briefs)-1], true
}

// RequestIDs returns the request ids seen so far, in call order.
func (m *MockEngine) RequestIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.requestIDs))
	copy(out, m.requestIDs)
	return out
}
