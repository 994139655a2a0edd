package wizard

import (
	"bytes"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/aymanbagabas/go-udiff"
	"github.com/mark3labs/copywiz/internal/copyengine"
	"github.com/mark3labs/copywiz/internal/tui/theme"
)

// unifiedDiff returns the unified diff from variation a to b as composed
// emails. It is empty when both compose to the same text.
func unifiedDiff(a, b copyengine.Variation, sender string) string {
	return udiff.Unified(a.HookType, b.HookType, a.ComposeAs(sender)+"\n", b.ComposeAs(sender)+"\n")
}

// renderDiff returns the highlighted diff between two variations.
func renderDiff(a, b copyengine.Variation, sender string) string {
	d := unifiedDiff(a, b, sender)
	if d == "" {
		return theme.Current().S().Muted.Render("(no differences)")
	}
	return highlight(d, "diff")
}

// highlight applies chroma syntax highlighting for the named lexer and
// returns text with ANSI color codes. On any failure source is returned as is.
func highlight(source, lexerName string) string {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Get("terminal256")
	}
	if formatter == nil {
		return source
	}

	baseStyle := styles.Get("monokai")
	if baseStyle == nil {
		baseStyle = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, baseStyle, iterator); err != nil {
		return source
	}
	return strings.TrimRight(buf.String(), "\n")
}
