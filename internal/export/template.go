// Package export renders a generated variation into a markdown file.
package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/copywiz/internal/copyengine"
)

// Variables holds the data to be injected into template placeholders.
type Variables struct {
	Client   string
	Industry string
	Audience string
	Website  string
	Strategy string
	HookType string
	Subject  string
	Body     string
	PS       string
	Sender   string
	Email    string // fully composed email
	Date     string // YYYY-MM-DD
}

// NewVariables builds template variables for one variation of a brief.
func NewVariables(brief copyengine.Brief, v copyengine.Variation, sender string, now time.Time) Variables {
	if sender == "" {
		sender = copyengine.DefaultSender
	}
	return Variables{
		Client:   brief.ClientName,
		Industry: brief.Industry,
		Audience: brief.Audience,
		Website:  brief.Website,
		Strategy: brief.Strategy,
		HookType: v.HookType,
		Subject:  v.Subject,
		Body:     v.Body,
		PS:       v.PS,
		Sender:   sender,
		Email:    v.ComposeAs(sender),
		Date:     now.Format("2006-01-02"),
	}
}

// Render replaces {{variable}} placeholders in template with actual values.
// Supports the following variables:
// - {{client}}, {{industry}}, {{audience}}, {{website}}, {{strategy}} - brief fields
// - {{hook_type}}, {{subject}}, {{body}}, {{ps}} - variation fields
// - {{sender}} - signature name
// - {{email}} - the composed email as copied to the clipboard
// - {{date}} - export date
func Render(template string, vars Variables) string {
	replacements := []string{
		"{{client}}", vars.Client,
		"{{industry}}", vars.Industry,
		"{{audience}}", vars.Audience,
		"{{website}}", vars.Website,
		"{{strategy}}", vars.Strategy,
		"{{hook_type}}", vars.HookType,
		"{{subject}}", vars.Subject,
		"{{body}}", vars.Body,
		"{{ps}}", vars.PS,
		"{{sender}}", vars.Sender,
		"{{email}}", vars.Email,
		"{{date}}", vars.Date,
	}
	// Single pass so values containing placeholders are not expanded again.
	return strings.NewReplacer(replacements...).Replace(template)
}

// LoadFromFile loads a template from a file.
func LoadFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	return string(data), nil
}

// GetTemplate returns the template content.
// If customPath is non-empty, loads from that file.
// Otherwise returns the default embedded template.
func GetTemplate(customPath string) (string, error) {
	if customPath == "" {
		return DefaultTemplate, nil
	}
	return LoadFromFile(customPath)
}
