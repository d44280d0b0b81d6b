package render

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/stylo/pkg/theme"
)

// JSON renders a resolved style as indented JSON in key order.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// Render formats style as JSON. The name is not part of the output.
func (j *JSON) Render(_ string, style *theme.Style) string {
	data, err := json.MarshalIndent(style, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON) + "\n"
	}
	return string(data) + "\n"
}

// YAML renders a resolved style as YAML in key order.
type YAML struct{}

// NewYAML creates a YAML renderer.
func NewYAML() *YAML {
	return &YAML{}
}

// Render formats style as YAML.
func (y *YAML) Render(_ string, style *theme.Style) string {
	data, err := yaml.Marshal(style)
	if err != nil {
		return "error: " + err.Error() + "\n"
	}
	return string(data)
}
