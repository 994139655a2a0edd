package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/copywiz/internal/logger"
	"github.com/mark3labs/copywiz/internal/tui/wizard"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive wizard (default)",
	Long: `Start the full-screen wizard.

Fill in the client brief, the website and your strategy notes, then let the
Copy Engine generate variations. On the result screen you can switch between
variations, copy one to the clipboard, compare two of them, export one to a
markdown file or re-roll for a fresh batch.`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting wizard against %s", client.Endpoint())
	_, err = wizard.Run(ctx, client, wizard.Options{
		Endpoint:       client.Endpoint(),
		Sender:         cfg.SenderName,
		RenderMarkdown: cfg.RenderMarkdown,
		ExportDir:      cfg.ExportDir,
		ExportTemplate: cfg.ExportTemplate,
		WorkDir:        workDir,
	})
	return interruptedOK(ctx, err)
}

// interruptedOK treats a program killed by a cancelled context (SIGINT,
// SIGTERM) as a normal quit.
func interruptedOK(ctx context.Context, err error) error {
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		logger.Info("Wizard interrupted: %v", ctx.Err())
		return nil
	}
	return err
}
