package wizard

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/copywiz/internal/copyengine"
	"github.com/mark3labs/copywiz/internal/state"
	"github.com/mark3labs/copywiz/internal/tui/theme"
)

// EmptyResultText is shown when the service returned no variations.
const EmptyResultText = "No variations generated. Please try again."

// ResultOptions configures the result step.
type ResultOptions struct {
	Sender         string
	RenderMarkdown bool
	ExportDir      string
	ExportTemplate string
	WorkDir        string        // where .copywiz.hooks.yml is looked up
	CopyAck        time.Duration // zero means DefaultCopyAck
}

// ResultStep shows the generated variations as tabs with copy, re-roll,
// compare and export actions.
type ResultStep struct {
	wizard   *state.Wizard
	gen      int
	opts     ResultOptions
	viewport viewport.Model
	ack      copyAck

	compare  bool
	previous int // last viewed variation before the active one, -1 if none

	status    string
	statusErr bool
	statusSeq int

	width  int
	height int
}

// NewResultStep builds the step from the current state.
func NewResultStep(w *state.Wizard, gen int, opts ResultOptions) *ResultStep {
	if opts.CopyAck <= 0 {
		opts.CopyAck = DefaultCopyAck
	}
	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(12),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	r := &ResultStep{
		wizard:   w,
		gen:      gen,
		opts:     opts,
		viewport: vp,
		ack:      copyAck{gen: gen, duration: opts.CopyAck},
		previous: -1,
		width:    60,
		height:   20,
	}
	r.refresh()
	return r
}

// Init initializes the result step.
func (r *ResultStep) Init() tea.Cmd {
	return nil
}

// SetSize updates the dimensions for the step.
func (r *ResultStep) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.viewport.SetWidth(width)
	// Title, subtitle, tabs, hook label, subject, status, buttons, hints.
	vpHeight := height - 12
	if vpHeight < 5 {
		vpHeight = 5
	}
	r.viewport.SetHeight(vpHeight)
	r.refresh()
}

// Update handles messages for the result step.
func (r *ResultStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case copyAckExpiredMsg:
		r.ack.expire(msg)
		return nil

	case exportDoneMsg:
		switch {
		case msg.Err != nil:
			r.status, r.statusErr = "Export failed: "+msg.Err.Error(), true
		case msg.HookErr != nil:
			r.status, r.statusErr = fmt.Sprintf("Exported to %s (post_export hook: %v)", msg.Path, msg.HookErr), true
		default:
			r.status, r.statusErr = "Exported to "+msg.Path, false
		}
		return r.expireStatus()

	case statusExpiredMsg:
		if msg.seq == r.statusSeq {
			r.status = ""
			r.statusErr = false
		}
		return nil

	case tea.KeyPressMsg:
		return r.handleKey(msg)
	}

	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return cmd
}

func (r *ResultStep) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "r" {
		gen := r.gen
		return func() tea.Msg { return RerollMsg{gen: gen} }
	}
	if len(r.wizard.Variations) == 0 {
		return nil
	}

	switch key {
	case "left", "h", "shift+tab":
		r.selectVariation(r.wizard.ActiveVariation - 1)
		return nil
	case "right", "l", "tab":
		r.selectVariation(r.wizard.ActiveVariation + 1)
		return nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		r.selectVariation(int(key[0] - '1'))
		return nil
	case "c":
		return r.copyActive()
	case "d":
		if len(r.wizard.Variations) > 1 {
			r.compare = !r.compare
			r.refresh()
		}
		return nil
	case "esc":
		if r.compare {
			r.compare = false
			r.refresh()
		}
		return nil
	case "x":
		v, ok := r.wizard.Active()
		if !ok {
			return nil
		}
		r.status, r.statusErr = "Exporting...", false
		return exportCmd(r.gen, r.wizard.Brief(), v, r.opts)
	}

	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return cmd
}

// selectVariation activates index i. Out-of-range indices are ignored.
func (r *ResultStep) selectVariation(i int) {
	prev := r.wizard.ActiveVariation
	if i == prev || !r.wizard.SelectVariation(i) {
		return
	}
	r.previous = prev
	r.refresh()
	r.viewport.GotoTop()
}

// copyActive copies the composed active email and shows the acknowledgment.
func (r *ResultStep) copyActive() tea.Cmd {
	v, ok := r.wizard.Active()
	if !ok {
		return nil
	}
	return tea.Batch(copyText(v.ComposeAs(r.opts.Sender)), r.ack.trigger())
}

func (r *ResultStep) expireStatus() tea.Cmd {
	r.statusSeq++
	gen, seq := r.gen, r.statusSeq
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusExpiredMsg{gen: gen, seq: seq}
	})
}

// compareTarget returns the variation the active one is compared against.
func (r *ResultStep) compareTarget() (copyengine.Variation, bool) {
	vs := r.wizard.Variations
	if len(vs) < 2 {
		return copyengine.Variation{}, false
	}
	idx := r.previous
	if idx < 0 || idx >= len(vs) || idx == r.wizard.ActiveVariation {
		idx = (r.wizard.ActiveVariation + 1) % len(vs)
	}
	return vs[idx], true
}

// refresh rebuilds the viewport content from state.
func (r *ResultStep) refresh() {
	v, ok := r.wizard.Active()
	if !ok {
		r.viewport.SetContent("")
		return
	}

	if r.compare {
		if other, ok := r.compareTarget(); ok {
			r.viewport.SetContent(renderDiff(other, v, r.opts.Sender))
			return
		}
	}

	email := v.ComposeAs(r.opts.Sender)
	s := theme.Current().S()
	inner := r.width - 4
	if r.opts.RenderMarkdown {
		r.viewport.SetContent(s.EmailBlock.Render(renderMarkdown(email, inner)))
		return
	}
	r.viewport.SetContent(s.EmailBlock.Width(r.width).Render(email))
}

// Content returns the composed email of the active variation.
func (r *ResultStep) Content() string {
	v, ok := r.wizard.Active()
	if !ok {
		return ""
	}
	return v.ComposeAs(r.opts.Sender)
}

// CopyLabel returns the current label of the copy control.
func (r *ResultStep) CopyLabel() string {
	return r.ack.label()
}

// Comparing reports whether the compare view is showing.
func (r *ResultStep) Comparing() bool {
	return r.compare
}

// Status returns the transient status line.
func (r *ResultStep) Status() string {
	return r.status
}

// View renders the result step.
func (r *ResultStep) View() string {
	s := theme.Current().S()
	vs := r.wizard.Variations

	if len(vs) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.Error.Render(EmptyResultText),
			"",
			NewButtonBar([]Button{{Label: "↻ Re-Roll Destiny", State: ButtonNormal}}).Render(),
			"",
			renderHintBar("r", "re-roll", "q", "quit"),
		)
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(glyph("sparkles") + " Manifested Realities"))
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render(fmt.Sprintf("%d visions from the future • ←/→ to compare", len(vs))))
	b.WriteString("\n\n")
	b.WriteString(r.renderTabs())
	b.WriteString("\n\n")

	v, _ := r.wizard.Active()
	if r.compare {
		other, _ := r.compareTarget()
		b.WriteString(s.DiffHeader.Render(fmt.Sprintf("Comparing %s → %s", other.HookType, v.HookType)))
	} else {
		b.WriteString(s.StepActive.Render(strings.ToUpper(v.HookType)))
		b.WriteString("\n")
		b.WriteString(s.Label.Render(v.Subject))
	}
	b.WriteString("\n")
	b.WriteString(r.viewport.View())
	b.WriteString("\n")

	if r.status != "" {
		if r.statusErr {
			b.WriteString(s.Error.Render(r.status))
		} else {
			b.WriteString(s.Success.Render(r.status))
		}
	}
	b.WriteString("\n")

	bar := NewButtonBar([]Button{
		{Label: r.ack.label(), State: ButtonNormal},
		{Label: "↻ Re-Roll Destiny", State: ButtonNormal},
		{Label: "Export to Reality", State: ButtonFocused},
	})
	bar.SetWidth(r.width)
	b.WriteString(bar.Render())
	b.WriteString("\n")
	b.WriteString(renderHintBar("←/→", "switch", "c", "copy", "r", "re-roll", "d", "compare", "x", "export", "q", "quit"))
	return b.String()
}

// renderTabs renders one tab per variation labelled by hook type.
func (r *ResultStep) renderTabs() string {
	s := theme.Current().S()
	tabs := make([]string, 0, len(r.wizard.Variations))
	for i, v := range r.wizard.Variations {
		label := fmt.Sprintf("%d %s", i+1, v.HookType)
		if i == r.wizard.ActiveVariation {
			tabs = append(tabs, s.TabActive.Render(label))
		} else {
			tabs = append(tabs, s.TabInactive.Render(label))
		}
	}
	return lipgloss.NewStyle().Width(r.width).Render(strings.Join(tabs, " "))
}
