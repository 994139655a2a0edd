package wizard

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/mark3labs/copywiz/internal/logger"
)

// DefaultCopyAck is how long the copy control shows its acknowledgment.
const DefaultCopyAck = 2000 * time.Millisecond

const (
	copyLabel   = "⧉ Copy"
	copiedLabel = "✓ Copied"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// copyText writes text to the system clipboard. When there is none (SSH,
// headless Linux) it falls back to the terminal's OSC 52 clipboard.
func copyText(text string) tea.Cmd {
	if err := clipboardWrite(text); err != nil {
		logger.Warn("System clipboard unavailable, using terminal clipboard: %v", err)
		return tea.SetClipboard(text)
	}
	logger.Debug("Copied %d bytes to clipboard", len(text))
	return nil
}

// copyAck tracks the transient "copied" label of one result step.
// Each copy restarts the window; only the latest timer reverts the label.
type copyAck struct {
	gen      int
	seq      int
	active   bool
	duration time.Duration
}

// trigger shows the acknowledgment and schedules its expiry.
func (c *copyAck) trigger() tea.Cmd {
	c.seq++
	c.active = true
	gen, seq := c.gen, c.seq
	return tea.Tick(c.duration, func(time.Time) tea.Msg {
		return copyAckExpiredMsg{gen: gen, seq: seq}
	})
}

// expire reverts the label if msg is from the latest copy.
func (c *copyAck) expire(msg copyAckExpiredMsg) {
	if msg.seq == c.seq {
		c.active = false
	}
}

func (c *copyAck) label() string {
	if c.active {
		return copiedLabel
	}
	return copyLabel
}
