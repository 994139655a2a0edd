package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestInterruptedOK(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	killed := fmt.Errorf("wizard failed: %w", fmt.Errorf("%w: %w", tea.ErrProgramKilled, context.Canceled))

	tests := []struct {
		name    string
		ctx     context.Context
		err     error
		wantErr bool
	}{
		{"clean exit", context.Background(), nil, false},
		{"killed by signal", cancelled, killed, false},
		{"killed without cancellation", context.Background(), killed, true},
		{"other failure after cancellation", cancelled, errors.New("tty lost"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := interruptedOK(tt.ctx, tt.err)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
