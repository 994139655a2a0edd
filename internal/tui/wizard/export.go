package wizard

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/copywiz/internal/copyengine"
	"github.com/mark3labs/copywiz/internal/export"
	"github.com/mark3labs/copywiz/internal/hooks"
	"github.com/mark3labs/copywiz/internal/logger"
)

// statusDuration is how long an export status line stays up.
const statusDuration = 4 * time.Second

// exportCmd writes v to disk and then runs the post_export hooks.
// It never mutates wizard state.
func exportCmd(gen int, brief copyengine.Brief, v copyengine.Variation, opts ResultOptions) tea.Cmd {
	return func() tea.Msg {
		path, err := export.Save(brief, v, export.Options{
			Dir:          opts.ExportDir,
			TemplatePath: opts.ExportTemplate,
			Sender:       opts.Sender,
		})
		if err != nil {
			logger.Error("Export failed: %v", err)
			return exportDoneMsg{gen: gen, Err: err}
		}

		return exportDoneMsg{gen: gen, Path: path, HookErr: runPostExport(opts.WorkDir, path, brief, v)}
	}
}

// runPostExport runs the configured post_export hooks for path.
func runPostExport(workDir, path string, brief copyengine.Brief, v copyengine.Variation) error {
	cfg, err := hooks.LoadConfig(workDir)
	if err != nil {
		logger.Warn("Skipping post_export hooks: %v", err)
		return err
	}
	if cfg == nil || len(cfg.Hooks.PostExport) == 0 {
		return nil
	}

	results, err := hooks.ExecuteAll(context.Background(), cfg.Hooks.PostExport, workDir, hooks.Variables{
		File:     path,
		Client:   brief.ClientName,
		HookType: v.HookType,
	})
	if err != nil {
		return err
	}
	return hooks.FirstError(results)
}
