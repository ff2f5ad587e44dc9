package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
)

// Out is where every helper writes. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

func Success(format string, args ...interface{}) {
	fmt.Fprint(Out, successStyle.Render("✓ "))
	fmt.Fprintf(Out, format+"\n", args...)
}

func Warning(format string, args ...interface{}) {
	fmt.Fprint(Out, warningStyle.Render("⚠ "))
	fmt.Fprintf(Out, format+"\n", args...)
}

func Error(format string, args ...interface{}) {
	fmt.Fprint(Out, errorStyle.Render("✗ "))
	fmt.Fprintf(Out, format+"\n", args...)
}

func Info(format string, args ...interface{}) {
	fmt.Fprint(Out, infoStyle.Render("ℹ "))
	fmt.Fprintf(Out, format+"\n", args...)
}

func Muted(format string, args ...interface{}) {
	fmt.Fprintln(Out, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Section prints a title underlined to its width.
func Section(title string) {
	fmt.Fprintln(Out)
	fmt.Fprintln(Out, primaryStyle.Render(title))
	fmt.Fprintln(Out, mutedStyle.Render(strings.Repeat("═", lipgloss.Width(title))))
	fmt.Fprintln(Out)
}

// StatusIcon renders the marker for a validated record.
func StatusIcon(valid bool) string {
	if valid {
		return successStyle.Render("✓")
	}
	return errorStyle.Render("✗")
}
