// Package pretty provides Lipgloss-based styled output for AST dumps.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Styles contains the styled renderers for tree output.
type Styles struct {
	// Node components.
	NodeType  lipgloss.Style
	Location  lipgloss.Style
	Value     lipgloss.Style
	Attribute lipgloss.Style

	// Misc.
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			NodeType:  plain,
			Location:  plain,
			Value:     plain,
			Attribute: plain,
			Dim:       plain,
			Bold:      plain,
		}
	}

	return &Styles{
		NodeType:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Location:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Attribute: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:      lipgloss.NewStyle().Bold(true),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// terminalWidth returns the writer's terminal width, or fallback when the
// writer is not a terminal.
func terminalWidth(writer io.Writer, fallback int) int {
	if f, ok := writer.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}
