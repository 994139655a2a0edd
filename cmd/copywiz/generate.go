package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/x/term"
	"github.com/mark3labs/copywiz/internal/copyengine"
	"github.com/mark3labs/copywiz/internal/logger"
	"github.com/mark3labs/copywiz/internal/state"
	"github.com/spf13/cobra"
)

var generateFlags struct {
	client   string
	industry string
	audience string
	website  string
	strategy string
	output   string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate variations without the TUI",
	Long: `Send one brief to the Copy Engine and print the variations.

The fields are checked with the same rules as the wizard: client and industry
are required, the website must contain a dot and the strategy needs more than
five characters.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateFlags.client, "client", "", "Client name (required)")
	generateCmd.Flags().StringVar(&generateFlags.industry, "industry", "", "Industry (required)")
	generateCmd.Flags().StringVar(&generateFlags.audience, "audience", "", "Target audience")
	generateCmd.Flags().StringVar(&generateFlags.website, "website", "", "Client website (required)")
	generateCmd.Flags().StringVar(&generateFlags.strategy, "strategy", "", "Strategy notes (required)")
	generateCmd.Flags().StringVarP(&generateFlags.output, "output", "o", "text", "Output format: text or json")
}

// briefFromFlags builds the wizard state the flags describe and checks it
// against the step gates.
func briefFromFlags() (copyengine.Brief, error) {
	w := state.New()
	w.Onboarding = state.Onboarding{
		ClientName: generateFlags.client,
		Industry:   generateFlags.industry,
		Audience:   generateFlags.audience,
	}
	w.Website = generateFlags.website
	w.Strategy = generateFlags.strategy

	var errs []error
	if !state.OnboardingValid(w.Onboarding) {
		errs = append(errs, errors.New("--client and --industry are required"))
	}
	if !state.WebsiteValid(w.Website) {
		errs = append(errs, errors.New("--website must contain a dot"))
	}
	if !state.StrategyValid(w.Strategy) {
		errs = append(errs, errors.New("--strategy must be longer than five characters"))
	}
	if len(errs) > 0 {
		return copyengine.Brief{}, errors.Join(errs...)
	}
	return w.Brief(), nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateFlags.output != "text" && generateFlags.output != "json" {
		return fmt.Errorf("invalid --output %q (use text or json)", generateFlags.output)
	}
	brief, err := briefFromFlags()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	requestID := copyengine.NewRequestID()
	logger.Info("Generating variations for %s (request %s)", brief.ClientName, requestID)
	variations, err := client.Generate(cmd.Context(), requestID, brief)
	if err != nil {
		return fmt.Errorf("failed to connect to Copy Engine at %s: %w", client.Endpoint(), err)
	}

	out := cmd.OutOrStdout()
	if generateFlags.output == "json" {
		return writeJSON(out, variations, isTerminal(out))
	}
	return writeText(out, variations, cfg.SenderName)
}

// writeText prints each variation as a composed email.
func writeText(w io.Writer, variations []copyengine.Variation, sender string) error {
	if len(variations) == 0 {
		_, err := fmt.Fprintln(w, "No variations generated. Please try again.")
		return err
	}
	for i, v := range variations {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		header := fmt.Sprintf("=== %d. %s ===", i+1, v.HookType)
		if _, err := fmt.Fprintf(w, "%s\n%s\n", header, v.ComposeAs(sender)); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON prints the variations as indented JSON, highlighted when color
// is set.
func writeJSON(w io.Writer, variations []copyengine.Variation, color bool) error {
	if variations == nil {
		variations = []copyengine.Variation{}
	}
	data, err := json.MarshalIndent(variations, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode variations: %w", err)
	}
	source := string(data) + "\n"

	if color {
		if err := quick.Highlight(w, source, "json", "terminal16m", "monokai"); err == nil {
			return nil
		}
	}
	_, err = io.WriteString(w, source)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(f.Fd()) && !strings.EqualFold(os.Getenv("NO_COLOR"), "1")
}
