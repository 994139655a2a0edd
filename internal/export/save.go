package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/mark3labs/copywiz/internal/copyengine"
	"github.com/mark3labs/copywiz/internal/logger"
)

const (
	exportsMarker = "<!-- EXPORTS -->"
	tableHeader   = "| File | Client | Hook | Subject | Date |"
	tableSep      = "|------|--------|------|---------|------|"
)

// Options controls a single export.
type Options struct {
	Dir          string // target directory, created if missing
	TemplatePath string // custom template, empty for the default
	Sender       string
	Now          func() time.Time
}

// FileName returns "<client>-<hook>.md" with both parts slugified.
func FileName(client, hookType string) string {
	parts := make([]string, 0, 2)
	if s := slug.Make(client); s != "" {
		parts = append(parts, s)
	}
	if s := slug.Make(hookType); s != "" {
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return "unnamed-variation.md"
	}
	return strings.Join(parts, "-") + ".md"
}

// Save renders v into opts.Dir and records it in the directory's README.
// An existing file with the same name is overwritten. Returns the written path.
func Save(brief copyengine.Brief, v copyengine.Variation, opts Options) (string, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	tmpl, err := GetTemplate(opts.TemplatePath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := FileName(brief.ClientName, v.HookType)
	path := filepath.Join(opts.Dir, name)

	vars := NewVariables(brief, v, opts.Sender, now())
	logger.Debug("Writing export to %s", path)
	if err := os.WriteFile(path, []byte(Render(tmpl, vars)), 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	readmePath := filepath.Join(opts.Dir, "README.md")
	if err := updateREADME(readmePath, name, vars); err != nil {
		return "", fmt.Errorf("failed to update README: %w", err)
	}

	logger.Info("Exported %q for %s to %s", v.HookType, brief.ClientName, path)
	return path, nil
}

// updateREADME adds a row for filename to the exports index.
// A missing README is created with a header and table; a row for the same
// file is replaced rather than duplicated.
func updateREADME(readmePath, filename string, vars Variables) error {
	row := fmt.Sprintf("| [%s](%s) | %s | %s | %s | %s |",
		filename, filename,
		cell(vars.Client), cell(vars.HookType), cell(vars.Subject), vars.Date)

	data, err := os.ReadFile(readmePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read README: %w", err)
	}

	var content string
	if os.IsNotExist(err) {
		content = "# Exports\n\n" + exportsMarker + "\n" + tableHeader + "\n" + tableSep + "\n" + row + "\n"
		return os.WriteFile(readmePath, []byte(content), 0644)
	}

	lines := strings.Split(string(data), "\n")
	prefix := fmt.Sprintf("| [%s](", filename)
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			continue
		}
		kept = append(kept, line)
	}
	content = strings.Join(kept, "\n")

	if idx := strings.Index(content, tableSep); idx >= 0 && strings.Contains(content, exportsMarker) {
		insertAt := idx + len(tableSep)
		content = content[:insertAt] + "\n" + row + content[insertAt:]
	} else {
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += "\n" + exportsMarker + "\n" + tableHeader + "\n" + tableSep + "\n" + row + "\n"
	}

	return os.WriteFile(readmePath, []byte(content), 0644)
}

// cell makes s safe for a single markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	if r := []rune(s); len(r) > 80 {
		s = string(r[:77]) + "..."
	}
	return s
}
