package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/stylo/pkg/theme"
)

// Plain renders one key=value line per entry with no ANSI codes, suitable
// for piping into other tools.
type Plain struct{}

// NewPlain creates a plain renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render formats style as key=value lines in key order.
func (p *Plain) Render(_ string, style *theme.Style) string {
	var sb strings.Builder
	for k, v := range style.All() {
		fmt.Fprintf(&sb, "%s=%s\n", k, formatValue(v))
	}
	return sb.String()
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case *theme.Style:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
