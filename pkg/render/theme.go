package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the chrome used around style previews.
type Theme struct {
	Name   string
	Title  lipgloss.Style
	Key    lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Frame  lipgloss.Style
	Bullet string
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:   "default",
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true), // blue
		Key:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),           // orange
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),           // light gray
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),           // gray
		Frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		Bullet: "·",
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:   "orca",
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true), // pale blue
		Key:    lipgloss.NewStyle().Foreground(lipgloss.Color("179")),           // muted gold
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // lighter gray
		Frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
		Bullet: "·",
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:   "mono",
		Title:  lipgloss.NewStyle().Bold(true),
		Key:    lipgloss.NewStyle(),
		Value:  lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle(),
		Frame:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		Bullet: "-",
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
