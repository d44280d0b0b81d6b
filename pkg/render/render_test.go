package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/stylo/pkg/theme"
)

func sampleStyle() *theme.Style {
	return theme.NewStyle().
		Set("color", "39").
		Set("bold", true).
		Set("padding", []any{1, 2}).
		Set("note", "kept")
}

func TestLipgloss_MapsKnownKeys(t *testing.T) {
	s := theme.NewStyle().
		Set("foreground", "196").
		Set("Background", "#000000").
		Set("bold", true).
		Set("italic", "true").
		Set("underline", false).
		Set("padding", "1 2 3 4").
		Set("margin", 2).
		Set("width", 20.0).
		Set("align", "center").
		Set("border", "rounded").
		Set("border-color", "238")

	ls := Lipgloss(s)

	assert.Equal(t, lipgloss.Color("196"), ls.GetForeground())
	assert.Equal(t, lipgloss.Color("#000000"), ls.GetBackground())
	assert.True(t, ls.GetBold())
	assert.True(t, ls.GetItalic())
	assert.False(t, ls.GetUnderline())

	top, right, bottom, left := ls.GetPadding()
	assert.Equal(t, []int{1, 2, 3, 4}, []int{top, right, bottom, left})
	mt, mr, mb, ml := ls.GetMargin()
	assert.Equal(t, []int{2, 2, 2, 2}, []int{mt, mr, mb, ml})

	assert.Equal(t, 20, ls.GetWidth())
	assert.Equal(t, lipgloss.Center, ls.GetAlignHorizontal())
	assert.Equal(t, lipgloss.RoundedBorder(), ls.GetBorderStyle())
	assert.Equal(t, lipgloss.Color("238"), ls.GetBorderTopForeground())
}

func TestLipgloss_IgnoresUnknownAndMalformed(t *testing.T) {
	s := theme.NewStyle().
		Set("shadow", "big").
		Set("bold", "maybe").
		Set("width", 1.5).
		Set("padding", []any{1, 2, 3, 4, 5}).
		Set("border", "zigzag")

	ls := Lipgloss(s)

	assert.False(t, ls.GetBold())
	assert.Equal(t, 0, ls.GetWidth())
	top, _, _, _ := ls.GetPadding()
	assert.Equal(t, 0, top)
	assert.Equal(t, lipgloss.Border{}, ls.GetBorderStyle())
}

func TestRecognized(t *testing.T) {
	assert.True(t, Recognized("border_color"))
	assert.True(t, Recognized("Border-Color"))
	assert.True(t, Recognized("color"))
	assert.False(t, Recognized("shadow"))
}

func TestJSON_KeepsOrder(t *testing.T) {
	out := NewJSON().Render("button", sampleStyle())

	assert.True(t, json.Valid([]byte(out)))
	assert.Less(t, strings.Index(out, `"color"`), strings.Index(out, `"note"`))
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestYAML_KeepsOrder(t *testing.T) {
	out := NewYAML().Render("button", sampleStyle())

	assert.True(t, strings.HasPrefix(out, "color: "), out)
	assert.Less(t, strings.Index(out, "color:"), strings.Index(out, "bold: true"))
	assert.Contains(t, out, "note: kept\n")
}

func TestPlain(t *testing.T) {
	out := NewPlain().Render("button", sampleStyle())

	assert.Equal(t, "color=39\nbold=true\npadding=[1 2]\nnote=kept\n", out)
	assert.NotContains(t, out, "\033[")
}

func TestTerminal_RendersPreview(t *testing.T) {
	r := NewTerminal(MonoTheme(), 80)
	out := r.Render("button_primary", sampleStyle())

	assert.Contains(t, out, "Button Primary")
	assert.Contains(t, out, "color")
	assert.Contains(t, out, "kept")
	assert.Contains(t, out, SampleText)
}

func TestTerminal_EmptyStyle(t *testing.T) {
	out := NewTerminal(MonoTheme(), 0).Render("x", theme.NewStyle())
	assert.Contains(t, out, "(empty)")
}

func TestByFormat(t *testing.T) {
	tests := []struct {
		format string
		want   Renderer
	}{
		{"json", &JSON{}},
		{"yaml", &YAML{}},
		{"plain", &Plain{}},
		{"bogus", &Plain{}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.IsType(t, tt.want, ByFormat(tt.format, DefaultTheme(), 80))
		})
	}
	assert.IsType(t, &Terminal{}, ByFormat("preview", DefaultTheme(), 80))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Button Primary", Title("button_primary"))
	assert.Equal(t, "Nav Item Active", Title("nav-item.active"))
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "orca", ThemeByName("orca").Name)
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("nope").Name)
}

func TestToInt(t *testing.T) {
	n, ok := toInt(json.Number("12"))
	require.True(t, ok)
	assert.Equal(t, 12, n)

	n, ok = toInt(int64(7))
	require.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = toInt("x")
	assert.False(t, ok)
}
