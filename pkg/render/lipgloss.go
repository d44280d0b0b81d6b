package render

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/stylo/pkg/theme"
)

// Lipgloss converts a resolved style into a lipgloss.Style.
//
// Recognized keys (case-insensitive, "-" and "_" optional): color or
// foreground, background, bold, italic, underline, faint, strikethrough,
// reverse, blink, padding, margin, width, height, align, border and
// border_color. Padding and margin take one to four integers, as a list or
// a space separated string. Unknown keys and malformed values are ignored.
func Lipgloss(s *theme.Style) lipgloss.Style {
	out := lipgloss.NewStyle()
	for k, v := range s.All() {
		out = applyKey(out, normalizeKey(k), v)
	}
	return out
}

// Recognized reports whether key maps onto a lipgloss property.
func Recognized(key string) bool {
	_, ok := knownKeys[normalizeKey(key)]
	return ok
}

var knownKeys = map[string]struct{}{
	"color": {}, "foreground": {}, "background": {},
	"bold": {}, "italic": {}, "underline": {}, "faint": {},
	"strikethrough": {}, "reverse": {}, "blink": {},
	"padding": {}, "margin": {}, "width": {}, "height": {},
	"align": {}, "border": {}, "bordercolor": {},
}

func normalizeKey(k string) string {
	return strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(k))
}

//nolint:gocyclo // flat dispatch over style keys
func applyKey(out lipgloss.Style, key string, v any) lipgloss.Style {
	switch key {
	case "color", "foreground":
		if c, ok := toString(v); ok {
			return out.Foreground(lipgloss.Color(c))
		}
	case "background":
		if c, ok := toString(v); ok {
			return out.Background(lipgloss.Color(c))
		}
	case "bordercolor":
		if c, ok := toString(v); ok {
			return out.BorderForeground(lipgloss.Color(c))
		}
	case "bold":
		if b, ok := toBool(v); ok {
			return out.Bold(b)
		}
	case "italic":
		if b, ok := toBool(v); ok {
			return out.Italic(b)
		}
	case "underline":
		if b, ok := toBool(v); ok {
			return out.Underline(b)
		}
	case "faint":
		if b, ok := toBool(v); ok {
			return out.Faint(b)
		}
	case "strikethrough":
		if b, ok := toBool(v); ok {
			return out.Strikethrough(b)
		}
	case "reverse":
		if b, ok := toBool(v); ok {
			return out.Reverse(b)
		}
	case "blink":
		if b, ok := toBool(v); ok {
			return out.Blink(b)
		}
	case "padding":
		if sides, ok := toSides(v); ok {
			return out.Padding(sides...)
		}
	case "margin":
		if sides, ok := toSides(v); ok {
			return out.Margin(sides...)
		}
	case "width":
		if n, ok := toInt(v); ok {
			return out.Width(n)
		}
	case "height":
		if n, ok := toInt(v); ok {
			return out.Height(n)
		}
	case "align":
		if p, ok := toPosition(v); ok {
			return out.Align(p)
		}
	case "border":
		if b, ok := toBorder(v); ok {
			return out.Border(b)
		}
	}
	return out
}

func toString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case int, int64, float64, json.Number:
		return fmt.Sprint(t), true
	default:
		return "", false
	}
}

func toBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(t)
		return b, err == nil
	default:
		return false, false
	}
}

func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		return int(t), true
	case json.Number:
		n, err := t.Int64()
		return int(n), err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	default:
		return 0, false
	}
}

func toSides(v any) ([]int, bool) {
	var parts []any
	switch t := v.(type) {
	case []any:
		parts = t
	case string:
		for _, f := range strings.Fields(t) {
			parts = append(parts, f)
		}
	default:
		parts = []any{v}
	}
	if len(parts) == 0 || len(parts) > 4 {
		return nil, false
	}
	sides := make([]int, 0, len(parts))
	for _, p := range parts {
		n, ok := toInt(p)
		if !ok {
			return nil, false
		}
		sides = append(sides, n)
	}
	return sides, true
}

func toPosition(v any) (lipgloss.Position, bool) {
	s, _ := v.(string)
	switch strings.ToLower(s) {
	case "left":
		return lipgloss.Left, true
	case "center":
		return lipgloss.Center, true
	case "right":
		return lipgloss.Right, true
	default:
		return 0, false
	}
}

func toBorder(v any) (lipgloss.Border, bool) {
	s, _ := v.(string)
	switch strings.ToLower(s) {
	case "normal":
		return lipgloss.NormalBorder(), true
	case "rounded":
		return lipgloss.RoundedBorder(), true
	case "thick":
		return lipgloss.ThickBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "block":
		return lipgloss.BlockBorder(), true
	case "hidden":
		return lipgloss.HiddenBorder(), true
	default:
		return lipgloss.Border{}, false
	}
}
