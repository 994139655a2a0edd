package main

import (
	"context"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/mark3labs/copywiz/internal/logger"
	"github.com/mark3labs/copywiz/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀▀ █▀█ █▀█ █▄█ █ █ █ █ ▀█"
	logoText2 = "█▄▄ █▄█ █▀▀  █  ▀▄▀▄▀ █ █▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "copywiz",
	Short: "Cold email copy wizard backed by a Copy Engine service",
	RunE:  runWizard,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewGilded()
	line1 := applyGradient(logoText1, t.Primary, t.Tertiary)
	line2 := applyGradient(logoText2, t.Primary, t.Tertiary)
	return strings.Join([]string{line1, line2}, "\n")
}

// applyGradient colors each rune of text along a gradient.
func applyGradient(text, from, to string) string {
	runes := []rune(text)
	colors := theme.Gradient(from, to, len(runes))

	var b strings.Builder
	for i, r := range runes {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])).Render(string(r)))
	}
	return b.String()
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

copywiz walks you through a five step brief (client, website, strategy),
asks a Copy Engine service for cold email variations and shows them side
by side so you can copy, compare or export the one you like.

Configuration is loaded from multiple sources with the following precedence:
  CLI flags > Environment variables > Project config > Global config > Defaults

Project config: ./copywiz.yml
Global config: ~/.config/copywiz/copywiz.yml`

	rootCmd.PersistentFlags().StringVar(&rootFlags.endpoint, "endpoint", "", "Copy Engine base URL (default: http://localhost:5001/api)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.configFile, "config", "", "Config file (default: project then global copywiz.yml)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(setupCmd)
}
