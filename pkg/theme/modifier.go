package theme

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Modifier selects how a modifier group is applied: a boolean gate merges
// or skips the whole group, a keyed variant merges one named sub-group.
type Modifier struct {
	variant string
	enabled bool
	keyed   bool
}

// On returns a gate that merges the group.
func On() Modifier { return Modifier{enabled: true} }

// Off returns a gate that skips the group.
func Off() Modifier { return Modifier{} }

// Bool returns On or Off.
func Bool(b bool) Modifier { return Modifier{enabled: b} }

// Variant returns a keyed modifier selecting the sub-group named name.
func Variant(name string) Modifier { return Modifier{variant: name, keyed: true} }

// IsKeyed reports whether m selects a named variant.
func (m Modifier) IsKeyed() bool { return m.keyed }

// Enabled reports whether a boolean gate is on. Keyed modifiers report false.
func (m Modifier) Enabled() bool { return !m.keyed && m.enabled }

// Key returns the selected variant name of a keyed modifier.
func (m Modifier) Key() string { return m.variant }

func (m Modifier) String() string {
	if m.keyed {
		return m.variant
	}
	return strconv.FormatBool(m.enabled)
}

// ParseModifier reads "true"/"false" as gates and anything else as a variant.
func ParseModifier(s string) Modifier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return On()
	case "false":
		return Off()
	}
	return Variant(s)
}

// Modifiers maps modifier keys to their selection.
type Modifiers map[string]Modifier

// ParseModifiers parses "key=value" pairs. A bare "key" means key=true.
func ParseModifiers(pairs []string) (Modifiers, error) {
	mods := make(Modifiers, len(pairs))
	for _, p := range pairs {
		key, value, found := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("modifier %q: empty key", p)
		}
		if !found {
			mods[key] = On()
			continue
		}
		mods[key] = ParseModifier(value)
	}
	return mods, nil
}

// String renders the modifiers as sorted key=value pairs.
func (m Modifiers) String() string {
	parts := make([]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		parts = append(parts, k+"="+m[k].String())
	}
	return strings.Join(parts, ",")
}
