// Package sheet loads declarative style sheets and registers their entries
// as theme sources.
//
// A sheet is a mapping from source name to raw style, written in YAML,
// TOML or JSON:
//
//	base:
//	  color: "252"
//	button:
//	  mixins: [base]
//	  padding: 1
//	  size:
//	    large: {padding: 3}
//
// YAML and JSON keep key order. TOML tables carry no order, so their keys
// are sorted.
package sheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/stylo/pkg/theme"
)

// Format identifies a sheet encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported sheet extension %q", filepath.Ext(path))
	}
}

// Sheet is an ordered set of named raw styles.
type Sheet struct {
	Path   string
	names  []string
	styles map[string]*theme.Style
}

// Names returns the source names in sheet order.
func (s *Sheet) Names() []string {
	return append([]string(nil), s.names...)
}

// Style returns the raw style declared under name.
func (s *Sheet) Style(name string) (*theme.Style, bool) {
	st, ok := s.styles[name]
	return st, ok
}

// Len returns the number of declared sources.
func (s *Sheet) Len() int { return len(s.names) }

// Load reads and parses the sheet at path.
func Load(path string) (*Sheet, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing sheet %s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// Parse decodes a sheet. Every top-level entry must be a mapping.
func Parse(data []byte, format Format) (*Sheet, error) {
	var root *theme.Style
	switch format {
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, err
		}
		if node.Kind == 0 {
			return &Sheet{styles: map[string]*theme.Style{}}, nil
		}
		return fromYAMLNode(&node)
	case FormatTOML:
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		root = theme.FromMap(m)
	case FormatJSON:
		root = theme.NewStyle()
		if len(bytes.TrimSpace(data)) > 0 {
			if err := json.Unmarshal(data, root); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("unsupported sheet format %q", format)
	}
	return fromStyle(root)
}

// fromYAMLNode walks the document node directly so a scalar entry is
// reported with its line number.
func fromYAMLNode(doc *yaml.Node) (*Sheet, error) {
	root := doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("sheet root must be a mapping of source names, line %d", root.Line)
	}
	s := &Sheet{styles: make(map[string]*theme.Style)}
	for i := 0; i+1 < len(root.Content); i += 2 {
		name, value := root.Content[i].Value, root.Content[i+1]
		st, err := theme.StyleFromNode(value)
		if err != nil {
			return nil, &theme.InvalidStyleError{Name: name, Reason: err.Error()}
		}
		s.add(name, st)
	}
	return s, nil
}

func fromStyle(root *theme.Style) (*Sheet, error) {
	s := &Sheet{styles: make(map[string]*theme.Style)}
	for name, v := range root.All() {
		st, ok := v.(*theme.Style)
		if !ok {
			return nil, &theme.InvalidStyleError{Name: name, Reason: fmt.Sprintf("sheet entry is %T, not a mapping", v)}
		}
		s.add(name, st)
	}
	return s, nil
}

func (s *Sheet) add(name string, st *theme.Style) {
	if _, ok := s.styles[name]; !ok {
		s.names = append(s.names, name)
	}
	s.styles[name] = st
}
