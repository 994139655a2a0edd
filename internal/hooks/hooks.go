// Package hooks runs user shell commands configured in .copywiz.hooks.yml.
package hooks

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/copywiz/internal/logger"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the hooks configuration file.
const ConfigFileName = ".copywiz.hooks.yml"

// LoadConfig loads the hooks configuration from the working directory.
// Returns nil if the config file doesn't exist (hooks are optional).
// Returns an error only if the file exists but cannot be parsed.
func LoadConfig(workDir string) (*Config, error) {
	configPath := filepath.Join(workDir, ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No hooks config found at %s", configPath)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hooks config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hooks config: %w", err)
	}

	logger.Debug("Loaded hooks config from %s (version: %d, post_export: %d)", configPath, cfg.Version, len(cfg.Hooks.PostExport))
	return &cfg, nil
}

// Variables holds template variables that can be expanded in hook commands.
type Variables struct {
	File     string // exported file path
	Client   string
	HookType string
}

// Result is the outcome of one hook command.
type Result struct {
	Command string
	Output  string
	Err     error // non-nil when the command failed or timed out
}

// Execute runs a hook command and returns its result.
// Template variables ({{file}}, {{client}}, {{hook_type}}) are expanded and
// shell-quoted before execution. A failing command is reported in Result.Err;
// the returned error is set only for context cancellation.
func Execute(ctx context.Context, hook *HookConfig, workDir string, vars Variables) (Result, error) {
	if hook == nil || hook.Command == "" {
		return Result{}, nil
	}

	command := expandVariables(hook.Command, vars)
	logger.Debug("Executing hook command: %s", command)

	timeout := hook.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(execCtx, "sh", "-c", command)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() != nil {
		return Result{Command: command}, ctx.Err()
	}

	res := Result{Command: command, Output: stdout.String()}
	if stderr.Len() > 0 {
		res.Output += "\n[stderr]\n" + stderr.String()
	}

	if execCtx.Err() == context.DeadlineExceeded {
		logger.Warn("Hook command timed out after %ds: %s", timeout, command)
		res.Err = fmt.Errorf("hook timed out after %ds", timeout)
		return res, nil
	}
	if err != nil {
		logger.Warn("Hook command failed: %v", err)
		res.Err = fmt.Errorf("hook command failed: %w", err)
		return res, nil
	}

	logger.Debug("Hook executed successfully, output length: %d bytes", len(res.Output))
	return res, nil
}

// ExecuteAll runs hooks in order. A failing hook does not stop the rest.
func ExecuteAll(ctx context.Context, hooks []*HookConfig, workDir string, vars Variables) ([]Result, error) {
	results := make([]Result, 0, len(hooks))
	for _, hook := range hooks {
		res, err := Execute(ctx, hook, workDir, vars)
		if err != nil {
			return results, err
		}
		if res.Command == "" {
			continue
		}
		results = append(results, res)
	}
	return results, nil
}

// FirstError returns the first failure among results, or nil.
func FirstError(results []Result) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// expandVariables replaces {{variable}} placeholders in the command string.
func expandVariables(command string, vars Variables) string {
	replacements := map[string]string{
		"{{file}}":      shellQuote(vars.File),
		"{{client}}":    shellQuote(vars.Client),
		"{{hook_type}}": shellQuote(vars.HookType),
	}

	result := command
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// shellQuote wraps s in single quotes for sh.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
