package config

import (
	"fmt"
	"slices"

	"github.com/dkoosis/stylo/pkg/theme"
)

// PostProcessConfig describes the built-in post processor.
type PostProcessConfig struct {
	// Scale multiplies numeric values. Zero or one leaves them alone.
	Scale float64 `yaml:"scale"`
	// Keys limits scaling to these keys. Empty means every numeric key.
	Keys []string `yaml:"keys"`
	// Drop removes keys from every resolved style.
	Drop []string `yaml:"drop"`
}

// IsZero reports whether the config describes no processing.
func (c PostProcessConfig) IsZero() bool {
	return (c.Scale == 0 || c.Scale == 1) && len(c.Drop) == 0
}

// Build returns the post processor, or nil when there is nothing to do.
func (c PostProcessConfig) Build() theme.PostProcessor {
	if c.IsZero() {
		return nil
	}
	return func(s *theme.Style) (*theme.Style, error) {
		for _, k := range c.Drop {
			s.Delete(k)
		}
		if c.Scale == 0 || c.Scale == 1 {
			return s, nil
		}
		for _, k := range s.Keys() {
			if len(c.Keys) > 0 && !slices.Contains(c.Keys, k) {
				continue
			}
			v, _ := s.Get(k)
			scaled, ok := scale(v, c.Scale)
			if ok {
				s.Set(k, scaled)
			}
		}
		return s, nil
	}
}

func scale(v any, factor float64) (any, bool) {
	switch n := v.(type) {
	case int:
		return scaleNumber(float64(n), factor), true
	case int64:
		return scaleNumber(float64(n), factor), true
	case float64:
		return n * factor, true
	default:
		return nil, false
	}
}

// scaleNumber keeps integral results as int so they render without a
// decimal point.
func scaleNumber(n, factor float64) any {
	r := n * factor
	if r == float64(int(r)) {
		return int(r)
	}
	return r
}

func (c PostProcessConfig) validate() error {
	if c.Scale < 0 {
		return fmt.Errorf("post_process.scale must not be negative, got: %v", c.Scale)
	}
	return nil
}
