package testfixtures

import (
	"regexp"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

// Initialize test environment
func init() {
	// Ascii profile strips color so rendered strings compare the same everywhere.
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// FastPhrase and FastDone keep synthesis timers short in tests.
const (
	FastPhrase = time.Millisecond
	FastDone   = time.Millisecond
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07]*\x07`)

// StripANSI removes escape sequences from rendered output.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// Contains reports whether rendered output contains substr once escape
// sequences are removed.
func Contains(rendered, substr string) bool {
	return strings.Contains(StripANSI(rendered), substr)
}
