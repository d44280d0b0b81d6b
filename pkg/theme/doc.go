// Package theme resolves named style sources into flat style objects.
//
// # Sources
//
// A source is a Producer registered under a name. Producers run lazily on
// every resolution and return a raw Style. A raw style may contain:
//
//   - plain values, passed through untouched
//   - a "mixins" list naming other sources whose raw styles are merged in
//     before the source's own keys
//   - nested styles, which act as modifier groups
//
// # Resolution
//
// GetStyle(name, mods, extra) resolves in this order (later steps win):
//
//  1. mixins, left to right
//  2. the source's own keys
//  3. modifier groups selected by mods, recursively
//  4. extra, shallow
//  5. the post processor, whose result is returned as is
//
// A boolean modifier merges (On) or skips (Off) the group under its key.
// A keyed modifier (Variant) merges the sub-group it names. The same
// modifier set is consulted at every nesting level, so one flat set can
// drive arbitrarily deep groups:
//
//	th := theme.New(nil)
//	th.SetSource("button", func(theme.Resolver, theme.Modifiers) (*theme.Style, error) {
//		return theme.NewStyle().
//			Set("color", "white").
//			Set("size", theme.NewStyle().
//				Set("small", theme.NewStyle().Set("padding", 1)).
//				Set("large", theme.NewStyle().Set("padding", 3))).
//			Set("disabled", theme.NewStyle().Set("color", "gray")), nil
//	})
//	style, err := th.GetStyle("button", theme.Modifiers{
//		"size":     theme.Variant("large"),
//		"disabled": theme.On(),
//	}, nil)
//	// style == {color: gray, padding: 3}
//
// Nested styles whose key has no modifier are dropped from the result.
package theme
