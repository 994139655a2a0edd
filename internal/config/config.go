// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Defaults applied when no file, env var or flag sets a value.
const (
	DefaultEndpoint   = "http://localhost:5001/api"
	DefaultTimeout    = 60 * time.Second
	DefaultSenderName = "Your Name"
	DefaultExportDir  = "exports"
	DefaultTheme      = "gilded"
)

// Config holds all configuration values for copywiz.
type Config struct {
	Endpoint       string        `mapstructure:"endpoint" yaml:"endpoint"`
	Timeout        time.Duration `mapstructure:"timeout" yaml:"timeout"`
	SenderName     string        `mapstructure:"sender_name" yaml:"sender_name"`
	LogLevel       string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile        string        `mapstructure:"log_file" yaml:"log_file"`
	ExportDir      string        `mapstructure:"export_dir" yaml:"export_dir"`
	ExportTemplate string        `mapstructure:"export_template" yaml:"export_template"`
	RenderMarkdown bool          `mapstructure:"render_markdown" yaml:"render_markdown"`
	Theme          string        `mapstructure:"theme" yaml:"theme"`
}

// Default returns a config populated with defaults only.
func Default() *Config {
	return &Config{
		Endpoint:   DefaultEndpoint,
		Timeout:    DefaultTimeout,
		SenderName: DefaultSenderName,
		LogLevel:   "info",
		ExportDir:  DefaultExportDir,
		Theme:      DefaultTheme,
	}
}

// envKeys lists the keys bound explicitly to COPYWIZ_* variables.
var envKeys = []string{
	"endpoint",
	"timeout",
	"sender_name",
	"log_level",
	"log_file",
	"export_dir",
	"export_template",
	"render_markdown",
	"theme",
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults.
// Callers that bind CLI flags use New and LoadWith instead.
func Load() (*Config, error) {
	return LoadWith(New())
}

// New returns a viper instance with defaults and env bindings applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("copywiz")

	d := Default()
	v.SetDefault("endpoint", d.Endpoint)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("sender_name", d.SenderName)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("export_dir", d.ExportDir)
	v.SetDefault("export_template", "")
	v.SetDefault("render_markdown", false)
	v.SetDefault("theme", d.Theme)

	v.SetEnvPrefix("COPYWIZ")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// LoadWith reads config files into v and unmarshals the merged result.
// An explicit file set on v (SetConfigFile) replaces the global/project lookup.
func LoadWith(v *viper.Viper) (*Config, error) {
	for _, key := range envKeys {
		if err := v.BindEnv(key, "COPYWIZ_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	if explicit := v.ConfigFileUsed(); explicit != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", explicit, err)
		}
	} else {
		globalPath := GlobalPath()
		if fileExists(globalPath) {
			v.SetConfigFile(globalPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading global config: %w", err)
			}
		}

		projectPath := ProjectPath()
		if fileExists(projectPath) {
			v.SetConfigFile(projectPath)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late inside the TUI.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}
	if !strings.HasPrefix(c.Endpoint, "http://") && !strings.HasPrefix(c.Endpoint, "https://") {
		return fmt.Errorf("endpoint must start with http:// or https://: %s", c.Endpoint)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/copywiz/copywiz.yml or $XDG_CONFIG_HOME/copywiz/copywiz.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "copywiz", "copywiz.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "copywiz", "copywiz.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "copywiz.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(fileConfig(cfg))
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileConfigShape mirrors Config with the timeout as a duration string, which
// is what viper decodes back into time.Duration.
type fileConfigShape struct {
	Endpoint       string `yaml:"endpoint"`
	Timeout        string `yaml:"timeout"`
	SenderName     string `yaml:"sender_name"`
	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"`
	ExportDir      string `yaml:"export_dir"`
	ExportTemplate string `yaml:"export_template"`
	RenderMarkdown bool   `yaml:"render_markdown"`
	Theme          string `yaml:"theme"`
}

func fileConfig(cfg *Config) fileConfigShape {
	return fileConfigShape{
		Endpoint:       cfg.Endpoint,
		Timeout:        cfg.Timeout.String(),
		SenderName:     cfg.SenderName,
		LogLevel:       cfg.LogLevel,
		LogFile:        cfg.LogFile,
		ExportDir:      cfg.ExportDir,
		ExportTemplate: cfg.ExportTemplate,
		RenderMarkdown: cfg.RenderMarkdown,
		Theme:          cfg.Theme,
	}
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
