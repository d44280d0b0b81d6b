package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/stylo/pkg/theme"
)

// SampleText is rendered with the resolved style in previews.
const SampleText = "The quick brown fox"

// Terminal renders a framed preview: a title, the resolved keys and a
// sample rendered with the style itself.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(th Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: th, width: width}
}

// Render formats the preview for name.
func (t *Terminal) Render(name string, style *theme.Style) string {
	lines := []string{t.theme.Title.Render(Title(name))}

	keyWidth := 0
	for _, k := range style.Keys() {
		keyWidth = max(keyWidth, runewidth.StringWidth(k))
	}
	for k, v := range style.All() {
		key := t.theme.Key.Render(runewidth.FillRight(k, keyWidth))
		value := t.theme.Value.Render(truncate(formatValue(v), t.width-keyWidth-8))
		if !Recognized(k) {
			value = t.theme.Muted.Render(truncate(formatValue(v), t.width-keyWidth-8))
		}
		lines = append(lines, t.theme.Muted.Render(t.theme.Bullet)+" "+key+"  "+value)
	}
	if style.Len() == 0 {
		lines = append(lines, t.theme.Muted.Render("(empty)"))
	}

	lines = append(lines, "", Lipgloss(style).Render(SampleText))
	return t.theme.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)) + "\n"
}

// Title turns a source name like "button_primary" into "Button Primary".
func Title(name string) string {
	spaced := strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(name)
	return cases.Title(language.English).String(spaced)
}

func truncate(s string, width int) string {
	if width <= 1 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
