// Package config provides configuration resolution with explicit priority order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/dkoosis/stylo/pkg/theme"
)

// Source names recorded in ResolvedConfig for debugging.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// ResolvedConfig holds the final resolved configuration after applying all priority rules.
type ResolvedConfig struct {
	Sheets  []string
	Format  string
	Theme   string
	NoColor bool
	Debug   bool

	// PostProcessor is nil when no post processing is configured.
	PostProcessor theme.PostProcessor

	// Resolution metadata (for debugging)
	SheetsSource  string
	FormatSource  string
	ThemeSource   string
	NoColorSource string
	DebugSource   string
}

// ResolveConfig resolves configuration from all sources with explicit priority order.
// This is the single source of truth for config resolution.
//
// Resolution order:
//  1. Load base config from .stylo.yaml (or defaults)
//  2. Apply environment variables
//  3. Apply CLI flags (highest priority)
func ResolveConfig(cliFlags CliFlags) (*ResolvedConfig, error) {
	appCfg, err := LoadConfig(cliFlags.ConfigPath)
	if err != nil {
		return nil, err
	}
	return resolve(cliFlags, appCfg)
}

func resolve(cliFlags CliFlags, appCfg *AppConfig) (*ResolvedConfig, error) {
	fileSource := SourceDefault
	if appCfg.Path != "" {
		fileSource = SourceFile
	}

	resolved := &ResolvedConfig{
		Sheets:        appCfg.Sheets,
		Format:        appCfg.Format,
		Theme:         appCfg.Theme,
		NoColor:       appCfg.NoColor,
		Debug:         appCfg.Debug,
		PostProcessor: appCfg.PostProcess.Build(),
		SheetsSource:  fileSource,
		FormatSource:  fileSource,
		ThemeSource:   fileSource,
		NoColorSource: fileSource,
		DebugSource:   fileSource,
	}

	// Resolve Sheets with priority: CLI > ENV > file
	if len(cliFlags.Sheets) > 0 {
		resolved.Sheets = cliFlags.Sheets
		resolved.SheetsSource = SourceCLI
	} else if env := os.Getenv("STYLO_SHEETS"); env != "" {
		resolved.Sheets = filepath.SplitList(env)
		resolved.SheetsSource = SourceEnv
	}

	// Resolve Format with priority: CLI > ENV > file > default
	if cliFlags.FormatSet {
		resolved.Format = cliFlags.Format
		resolved.FormatSource = SourceCLI
	} else if env := os.Getenv("STYLO_FORMAT"); env != "" {
		resolved.Format = strings.ToLower(env)
		resolved.FormatSource = SourceEnv
	}

	// Resolve Theme with priority: CLI > ENV > file > default
	if cliFlags.ThemeSet {
		resolved.Theme = cliFlags.Theme
		resolved.ThemeSource = SourceCLI
	} else if env := os.Getenv("STYLO_THEME"); env != "" {
		resolved.Theme = env
		resolved.ThemeSource = SourceEnv
	}

	// Resolve NoColor with priority: CLI > ENV > file > default
	if cliFlags.NoColorSet {
		resolved.NoColor = cliFlags.NoColor
		resolved.NoColorSource = SourceCLI
	} else if envNoColor := getEnvBool("STYLO_NO_COLOR", "NO_COLOR"); envNoColor != nil {
		resolved.NoColor = *envNoColor
		resolved.NoColorSource = SourceEnv
	}

	// Resolve Debug with priority: CLI > ENV > file > default
	if cliFlags.DebugSet {
		resolved.Debug = cliFlags.Debug
		resolved.DebugSource = SourceCLI
	} else if os.Getenv("STYLO_DEBUG") != "" {
		resolved.Debug = true
		resolved.DebugSource = SourceEnv
	}

	// NoColor implies the monochrome preview chrome
	if resolved.NoColor {
		resolved.Theme = "mono"
	}

	if err := validateResolvedConfig(resolved, appCfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return resolved, nil
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

// validateResolvedConfig validates the resolved configuration and returns errors for invalid states.
func validateResolvedConfig(cfg *ResolvedConfig, appCfg *AppConfig) error {
	if !slices.Contains(ValidFormats, cfg.Format) {
		return fmt.Errorf("invalid format value: %s (must be one of: %s)", cfg.Format, strings.Join(ValidFormats, ", "))
	}
	return appCfg.PostProcess.validate()
}
