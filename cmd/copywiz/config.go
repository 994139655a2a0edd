package main

import (
	"fmt"

	"github.com/mark3labs/copywiz/internal/config"
	"github.com/mark3labs/copywiz/internal/copyengine"
	"github.com/mark3labs/copywiz/internal/logger"
	"github.com/mark3labs/copywiz/internal/tui/theme"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	endpoint   string
	configFile string
}

// loadConfig resolves configuration for cmd and applies the logging and
// theme settings.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := config.New()
	if rootFlags.configFile != "" {
		v.SetConfigFile(rootFlags.configFile)
	}
	if f := cmd.Root().PersistentFlags().Lookup("endpoint"); f != nil && f.Changed {
		if err := v.BindPFlag("endpoint", f); err != nil {
			return nil, fmt.Errorf("binding endpoint flag: %w", err)
		}
	}

	cfg, err := config.LoadWith(v)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	if !theme.Set(cfg.Theme) {
		logger.Warn("Unknown theme %q, using %s", cfg.Theme, theme.DefaultName)
	}

	logger.Debug("Config loaded: endpoint=%s timeout=%s", cfg.Endpoint, cfg.Timeout)
	return cfg, nil
}

// newClient builds the Copy Engine client for cfg.
func newClient(cfg *config.Config) (*copyengine.HTTPClient, error) {
	client, err := copyengine.NewHTTPClient(cfg.Endpoint, copyengine.WithTimeout(cfg.Timeout))
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	return client, nil
}
