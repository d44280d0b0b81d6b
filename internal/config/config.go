package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and in
// the user config directory.
const FileName = ".stylo.yaml"

// Constants for default values.
const (
	DefaultFormat = "auto"
	DefaultTheme  = "default"
)

// ValidFormats lists the accepted output formats.
var ValidFormats = []string{"auto", "json", "yaml", "plain", "preview"}

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ConfigPath string
	Sheets     []string
	Format     string
	Theme      string
	NoColor    bool
	Debug      bool

	// Flags to track if they were explicitly set by the user
	FormatSet  bool
	ThemeSet   bool
	NoColorSet bool
	DebugSet   bool
}

// AppConfig represents the contents of .stylo.yaml.
type AppConfig struct {
	Sheets      []string          `yaml:"sheets"`
	Format      string            `yaml:"format"`
	Theme       string            `yaml:"theme"`
	NoColor     bool              `yaml:"no_color"`
	Debug       bool              `yaml:"debug"`
	PostProcess PostProcessConfig `yaml:"post_process"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-"`
}

// DefaultConfig returns the hardcoded defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Format: DefaultFormat,
		Theme:  DefaultTheme,
	}
}

// LoadConfig reads the config file. With an empty path the local and user
// config locations are searched and a missing file yields the defaults. An
// explicit path that cannot be read is an error.
func LoadConfig(path string) (*AppConfig, error) {
	appCfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = getConfigPath()
		if path == "" {
			return appCfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return appCfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	// Merge YAML settings onto the defaults
	appCfg.Path = path
	appCfg.Sheets = resolveSheetPaths(filepath.Dir(path), fileCfg.Sheets)
	if fileCfg.Format != "" {
		appCfg.Format = fileCfg.Format
	}
	if fileCfg.Theme != "" {
		appCfg.Theme = fileCfg.Theme
	}
	appCfg.NoColor = fileCfg.NoColor
	appCfg.Debug = fileCfg.Debug
	appCfg.PostProcess = fileCfg.PostProcess

	return appCfg, nil
}

func resolveSheetPaths(dir string, sheets []string) []string {
	out := make([]string, 0, len(sheets))
	for _, s := range sheets {
		if s == "" {
			continue
		}
		if !filepath.IsAbs(s) {
			s = filepath.Join(dir, s)
		}
		out = append(out, s)
	}
	return out
}

// getConfigPath tries to find the .stylo.yaml configuration file.
// It checks local directory first, then the user config directory.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "stylo", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
