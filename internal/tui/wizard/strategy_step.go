package wizard

import (
	"os"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/copywiz/internal/logger"
	"github.com/mark3labs/copywiz/internal/state"
	"github.com/mark3labs/copywiz/internal/tui/theme"
)

// StrategyStep collects free-form strategy notes.
type StrategyStep struct {
	wizard   *state.Wizard
	gen      int
	textarea textarea.Model
	width    int
	tmpFile  string // Path to temp file while the external editor is open
}

// NewStrategyStep builds the step from the current state value.
func NewStrategyStep(w *state.Wizard, gen int) *StrategyStep {
	return &StrategyStep{
		wizard:   w,
		gen:      gen,
		textarea: newTextArea("e.g. Focus on summer collection...", w.Strategy),
		width:    60,
	}
}

// Init focuses the textarea.
func (st *StrategyStep) Init() tea.Cmd {
	st.textarea.Focus()
	return nil
}

// SetSize updates the dimensions for the step.
func (st *StrategyStep) SetSize(width, height int) {
	st.width = width
	st.textarea.SetWidth(width - 4)
	h := height - 12
	if h < 4 {
		h = 4
	}
	if h > 12 {
		h = 12
	}
	st.textarea.SetHeight(h)
}

// Update handles messages for the strategy step.
func (st *StrategyStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+s":
			return continueCmd(st.gen)
		case "ctrl+e":
			return st.openEditor()
		}
	case StrategyEditedMsg:
		st.cleanupTmp()
		st.textarea.SetValue(msg.Content)
		st.wizard.Strategy = st.textarea.Value()
		return nil
	}

	var cmd tea.Cmd
	st.textarea, cmd = st.textarea.Update(msg)
	st.wizard.Strategy = st.textarea.Value()
	return cmd
}

// openEditor launches the user's $EDITOR with the current notes.
func (st *StrategyStep) openEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "copywiz_strategy_*.md")
	if err != nil {
		logger.Warn("Cannot create temp file for editor: %v", err)
		return nil
	}
	if _, err := tmpfile.WriteString(st.wizard.Strategy); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()
	st.tmpFile = tmpfile.Name()

	cmd, err := editor.Command("copywiz", tmpfile.Name())
	if err != nil {
		logger.Warn("No editor available: %v", err)
		st.cleanupTmp()
		return nil
	}

	gen := st.gen
	path := tmpfile.Name()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorResult(gen, path, err)
	})
}

// editorResult reads the notes back from path and removes it. A failed
// editor or read yields no message.
func editorResult(gen int, path string, err error) tea.Msg {
	defer func() { _ = os.Remove(path) }()

	if err != nil {
		logger.Warn("Editor exited with error: %v", err)
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Cannot read editor result: %v", err)
		return nil
	}
	return StrategyEditedMsg{gen: gen, Content: strings.TrimRight(string(content), "\n")}
}

func (st *StrategyStep) cleanupTmp() {
	if st.tmpFile != "" {
		_ = os.Remove(st.tmpFile)
		st.tmpFile = ""
	}
}

// CanContinue reports whether the Generate control is enabled.
func (st *StrategyStep) CanContinue() bool {
	return state.StrategyValid(st.wizard.Strategy)
}

// View renders the strategy step.
func (st *StrategyStep) View() string {
	s := theme.Current().S()

	var b strings.Builder
	b.WriteString(s.Title.Render("Psychic Imprint"))
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render("Paste your raw thoughts or strategy notes to guide the vision."))
	b.WriteString("\n\n")
	b.WriteString(renderField("Strategy Notes", st.textarea.View(), true))
	b.WriteString("\n\n")

	bar := NewButtonBar(CreateBackNextButtons(true, st.CanContinue(), "Generate Emails →"))
	bar.SetWidth(st.width)
	b.WriteString(bar.Render())
	b.WriteString("\n\n")

	if os.Getenv("EDITOR") != "" || os.Getenv("VISUAL") != "" {
		b.WriteString(renderHintBar("ctrl+s", "generate", "ctrl+e", "edit", "esc", "back"))
	} else {
		b.WriteString(renderHintBar("ctrl+s", "generate", "esc", "back"))
	}
	return b.String()
}
