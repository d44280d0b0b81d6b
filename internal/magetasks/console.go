package magetasks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Out receives task output. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

var (
	h1Style      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	h2Style      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// PrintH1Header prints a top-level header with decoration.
func PrintH1Header(title string) {
	const width = 80
	rule := strings.Repeat("=", width)
	padding := max((width-lipgloss.Width(title))/2, 0)
	fmt.Fprintf(Out, "\n%s\n%s%s\n%s\n\n", rule, strings.Repeat(" ", padding), h1Style.Render(title), rule)
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Fprintf(Out, "\n%s\n\n", h2Style.Render("=== "+title+" ==="))
}

func PrintSuccess(msg string) { fmt.Fprintln(Out, successStyle.Render("✅ "+msg)) }

func PrintWarning(msg string) { fmt.Fprintln(Out, warningStyle.Render("⚠️  "+msg)) }

func PrintError(msg string) { fmt.Fprintln(Out, errorStyle.Render("❌ "+msg)) }

func PrintInfo(msg string) { fmt.Fprintln(Out, infoStyle.Render("ℹ️  "+msg)) }
