// Package render formats resolved styles for output and converts them into
// lipgloss styles for terminal UIs.
package render

import "github.com/dkoosis/stylo/pkg/theme"

// Renderer converts a resolved style to formatted output.
type Renderer interface {
	Render(name string, style *theme.Style) string
}

// ByFormat returns the renderer for a format name: json, yaml, plain or
// terminal. Unknown names fall back to plain.
func ByFormat(format string, th Theme, width int) Renderer {
	switch format {
	case "json":
		return NewJSON()
	case "yaml":
		return NewYAML()
	case "terminal", "preview":
		return NewTerminal(th, width)
	default:
		return NewPlain()
	}
}
