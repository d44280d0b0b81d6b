// Package config handles configuration loading and merging for stylo.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (-sheet, -format, -theme, -no-color, -debug)
//  2. Environment variables (STYLO_SHEETS, STYLO_FORMAT, STYLO_THEME, STYLO_NO_COLOR, NO_COLOR, STYLO_DEBUG)
//  3. YAML config file (.stylo.yaml in local directory or ~/.config/stylo/.stylo.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Sheets
//
// Sheets are layered in list order: each later sheet extends the sources of
// the earlier ones key by key. Relative sheet paths in a config file are
// resolved against the directory holding that file. STYLO_SHEETS uses the
// platform list separator (":" on Unix).
//
// # Post Processing
//
// The post_process section builds the theme's post processor:
//
//	post_process:
//	  scale: 2          # multiply numeric values
//	  keys: [padding]   # only these keys (all numeric keys when empty)
//	  drop: [debug]     # remove these keys from every resolved style
package config
