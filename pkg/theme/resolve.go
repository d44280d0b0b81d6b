package theme

import (
	"fmt"
	"slices"
)

// resolution is the Resolver handed to a producer. It carries the chain of
// sources being produced so callbacks into GetStyle can detect cycles.
type resolution struct {
	theme *Theme
	path  []string
}

func (r *resolution) GetStyle(name string, mods Modifiers, extra *Style) (*Style, error) {
	return r.theme.getStyle(r.path, name, mods, extra)
}

func (r *resolution) Theme() *Theme { return r.theme }

func (t *Theme) getStyle(path []string, name string, mods Modifiers, extra *Style) (*Style, error) {
	raw, err := t.raw(path, name, mods)
	if err != nil {
		return nil, err
	}
	style, err := t.applyModifiers(append(slices.Clone(path), name), name, raw, mods)
	if err != nil {
		return nil, err
	}
	if extra != nil {
		style.Merge(extra)
	}
	if t.post == nil {
		return style, nil
	}
	processed, err := t.post(style)
	if err != nil {
		return nil, fmt.Errorf("post processing %q: %w", name, err)
	}
	if processed == nil {
		return nil, &InvalidStyleError{Name: name, Reason: "post processor returned nil"}
	}
	return processed, nil
}

// raw invokes the producer for name and inlines its mixins. Modifier groups
// are left in place. The returned style is always a fresh copy.
func (t *Theme) raw(path []string, name string, mods Modifiers) (*Style, error) {
	if slices.Contains(path, name) {
		return nil, &CyclicResolutionError{Path: append(slices.Clone(path), name)}
	}
	producer, ok := t.sources[name]
	if !ok || producer == nil {
		return nil, &UnknownSourceError{Name: name}
	}
	next := append(slices.Clone(path), name)
	style, err := producer(&resolution{theme: t, path: next}, mods)
	if err != nil {
		return nil, fmt.Errorf("source %q: %w", name, err)
	}
	if style == nil {
		return nil, &InvalidStyleError{Name: name, Reason: "producer returned nil"}
	}
	return t.inlineMixins(next, name, style, mods)
}

// inlineMixins merges the raw styles listed under MixinsKey left to right,
// then lays the style's own keys on top.
func (t *Theme) inlineMixins(path []string, name string, style *Style, mods Modifiers) (*Style, error) {
	v, ok := style.Get(MixinsKey)
	if !ok {
		return style.Clone(), nil
	}
	names, err := mixinNames(v)
	if err != nil {
		return nil, &InvalidStyleError{Name: name, Reason: err.Error()}
	}
	merged := NewStyle()
	for _, mixin := range names {
		m, err := t.raw(path, mixin, mods)
		if err != nil {
			return nil, err
		}
		merged.Merge(m)
	}
	own := style.Clone()
	own.Delete(MixinsKey)
	return merged.Merge(own), nil
}

func mixinNames(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{t}, nil
	case []string:
		return t, nil
	case []any:
		names := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("mixin entry %v is not a source name", item)
			}
			names = append(names, s)
		}
		return names, nil
	default:
		return nil, fmt.Errorf("mixins must be a list of source names, got %T", v)
	}
}

// applyModifiers flattens the modifier groups of style. Plain keys are
// copied first; then every group whose key appears in mods is resolved
// recursively and merged in key order, so group values win over plain
// keys of the same level. Groups without a matching modifier are dropped.
//
// path holds the owning source and every mixin inlined by an enclosing
// group. A group mixin already on path is a cycle.
func (t *Theme) applyModifiers(path []string, name string, style *Style, mods Modifiers) (*Style, error) {
	out := NewStyle()
	var groups []string
	for k, v := range style.All() {
		if _, ok := asStyle(v); ok {
			groups = append(groups, k)
			continue
		}
		out.Set(k, v)
	}
	for _, k := range groups {
		m, ok := mods[k]
		if !ok {
			continue
		}
		v, _ := style.Get(k)
		group, _ := asStyle(v)
		selected, ok := selectGroup(group, m)
		if !ok {
			continue
		}
		groupPath, err := withMixins(path, name, selected)
		if err != nil {
			return nil, err
		}
		selected, err = t.inlineMixins(path, name, selected, mods)
		if err != nil {
			return nil, err
		}
		resolved, err := t.applyModifiers(groupPath, name, selected, mods)
		if err != nil {
			return nil, err
		}
		out.Merge(resolved)
	}
	return out, nil
}

// withMixins extends path with the mixins a group is about to inline.
func withMixins(path []string, name string, group *Style) ([]string, error) {
	v, ok := group.Get(MixinsKey)
	if !ok {
		return path, nil
	}
	names, err := mixinNames(v)
	if err != nil {
		return nil, &InvalidStyleError{Name: name, Reason: err.Error()}
	}
	return append(slices.Clone(path), names...), nil
}

// selectGroup picks what a modifier merges from group: the whole group for
// an enabled gate, the named sub-group for a keyed modifier.
func selectGroup(group *Style, m Modifier) (*Style, bool) {
	if !m.IsKeyed() {
		return group, m.Enabled()
	}
	v, ok := group.Get(m.Key())
	if !ok {
		return nil, false
	}
	return asStyle(v)
}
