package wizard

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/copywiz/internal/state"
	"github.com/mark3labs/copywiz/internal/tui/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps_Registry(t *testing.T) {
	require.Len(t, Steps, 5)
	titles := make([]string, 0, len(Steps))
	for i, def := range Steps {
		assert.Equal(t, i, def.Ordinal)
		assert.NotEqual(t, "•", glyph(def.Icon), "every icon has a glyph")
		titles = append(titles, def.Title)
	}
	assert.Equal(t, []string{"Attune", "Aura", "Imprint", "Channel", "Manifest"}, titles)
	assert.Equal(t, "•", glyph("unknown"))
}

func TestProgress(t *testing.T) {
	tests := []struct {
		step     int
		expected float64
	}{
		{state.StepOnboarding, 0},
		{state.StepWebsite, 1.0 / 3},
		{state.StepStrategy, 2.0 / 3},
		{state.StepSynthesis, 1},
		{state.StepResult, 1},
		{-1, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Progress(tt.step), 1e-9, "step %d", tt.step)
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, segmentCompleted, statusFor(0, 1))
	assert.Equal(t, segmentActive, statusFor(1, 1))
	assert.Equal(t, segmentPending, statusFor(2, 1))
}

func TestRenderHeader(t *testing.T) {
	out := testfixtures.StripANSI(renderHeader(state.StepWebsite, 60))
	assert.Contains(t, out, "✓ Attune")
	assert.Contains(t, out, "◎ Aura")
	assert.Contains(t, out, "≡ Imprint")
	assert.NotContains(t, out, "Channel")

	assert.Empty(t, renderHeader(state.StepSynthesis, 60))
	assert.Empty(t, renderHeader(state.StepResult, 60))
}

func TestRenderProgressBar(t *testing.T) {
	out := testfixtures.StripANSI(renderProgressBar(0.5, 10))
	assert.Equal(t, 5, strings.Count(out, "━"))
	assert.Equal(t, 5, strings.Count(out, "─"))

	out = testfixtures.StripANSI(renderProgressBar(1, 10))
	assert.Equal(t, 10, strings.Count(out, "━"))
	assert.Zero(t, strings.Count(out, "─"))
}

func TestButtonBar(t *testing.T) {
	bar := NewButtonBar(CreateBackNextButtons(true, false, "Analyze →"))
	bar.SetWidth(50)

	buttons := bar.Buttons()
	require.Len(t, buttons, 2)
	assert.Equal(t, ButtonNormal, buttons[0].State)
	assert.Equal(t, ButtonDisabled, buttons[1].State)

	out := testfixtures.StripANSI(bar.Render())
	assert.Contains(t, out, "← Back")
	assert.Contains(t, out, "Analyze →")
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, " "), "Analyze →"), "right aligned")

	assert.Empty(t, NewButtonBar(nil).Render())
}

func TestContinueButton(t *testing.T) {
	assert.Equal(t, ButtonFocused, continueButton("Go", true).State)
	assert.Equal(t, ButtonDisabled, continueButton("Go", false).State)
}

func TestRenderHintBar(t *testing.T) {
	out := testfixtures.StripANSI(renderHintBar("tab", "next field", "esc", "quit"))
	assert.Equal(t, "tab next field • esc quit", out)

	assert.Empty(t, renderHintBar("tab"))
	assert.Empty(t, renderHintBar())
}

func TestHighlight_UnknownLexerFallsBack(t *testing.T) {
	out := testfixtures.StripANSI(highlight("plain words", "no-such-lexer"))
	assert.Equal(t, "plain words", strings.TrimSpace(out))
}

func TestRenderDiff_Identical(t *testing.T) {
	v := testfixtures.FourVariations()[0]
	assert.Equal(t, "(no differences)", testfixtures.StripANSI(renderDiff(v, v, "")))
}

func TestRenderMarkdown(t *testing.T) {
	out := testfixtures.StripANSI(renderMarkdown("Subject: Hello\n\nBody text", 60))
	assert.Contains(t, out, "Subject: Hello")
	assert.Contains(t, out, "Body text")
}

func TestEditorResult(t *testing.T) {
	writeNotes := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "copywiz_strategy_test.md")
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
		return path
	}

	t.Run("success", func(t *testing.T) {
		path := writeNotes(t, "Lead with the calculator\n")
		msg := editorResult(3, path, nil)
		assert.Equal(t, StrategyEditedMsg{gen: 3, Content: "Lead with the calculator"}, msg)
		assert.NoFileExists(t, path)
	})

	t.Run("editor failed", func(t *testing.T) {
		path := writeNotes(t, "unsaved")
		assert.Nil(t, editorResult(3, path, errors.New("exit status 1")))
		assert.NoFileExists(t, path)
	})

	t.Run("file gone", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.md")
		assert.Nil(t, editorResult(3, path, nil))
	})
}
