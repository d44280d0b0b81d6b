package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps user config and STYLO_* variables out of the run.
func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{"STYLO_SHEETS", "STYLO_FORMAT", "STYLO_THEME", "STYLO_NO_COLOR", "STYLO_DEBUG", "NO_COLOR"} {
		t.Setenv(key, "")
	}
}

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

var themeSheet = filepath.Join("testdata", "theme.yaml")

func TestRun_ResolvesWithModifiers(t *testing.T) {
	isolate(t)
	code, out, errOut := runCLI(t, "",
		"-sheet", themeSheet, "-mod", "size=large", "-mod", "disabled", "-format", "json", "button")
	require.Equal(t, 0, code, errOut)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{"color": "240", "bold": false, "padding": float64(3)}, got)
	assert.Less(t, strings.Index(out, `"color"`), strings.Index(out, `"padding"`))
}

func TestRun_LayersSheets(t *testing.T) {
	isolate(t)
	code, out, errOut := runCLI(t, "",
		"-sheet", themeSheet, "-sheet", filepath.Join("testdata", "brand.toml"), "-format", "plain", "button")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "color=252\nbold=false\npadding=1\nbackground=39\n", out)
}

func TestRun_ExtraOverlay(t *testing.T) {
	isolate(t)
	code, out, errOut := runCLI(t, "",
		"-sheet", themeSheet, "-extra", "padding=9", "-extra", "cursor=pointer", "-format", "plain", "button")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "padding=9\n")
	assert.True(t, strings.HasSuffix(out, "cursor=pointer\n"), out)
}

func TestRun_StdinSheet(t *testing.T) {
	isolate(t)
	code, out, errOut := runCLI(t, "chip:\n  color: red\n", "-sheet", "-", "-format", "plain", "chip")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "color=red\n", out)
}

func TestRun_List(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI(t, "", "-sheet", themeSheet, "-list")
	assert.Equal(t, 0, code)
	assert.Equal(t, "button\nloop\ntext\n", out)
}

func TestRun_ResolutionErrors(t *testing.T) {
	isolate(t)

	code, _, errOut := runCLI(t, "", "-sheet", themeSheet, "missing")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `unknown style source "missing"`)

	code, _, errOut = runCLI(t, "", "-sheet", themeSheet, "loop")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "loop -> loop")
}

func TestRun_UsageErrors(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no sheets", []string{"button"}, "no style sheets"},
		{"no name", []string{"-sheet", themeSheet}, "Usage: stylo"},
		{"bad mod", []string{"-sheet", themeSheet, "-mod", "=x", "button"}, "-mod"},
		{"bad extra", []string{"-sheet", themeSheet, "-extra", "nokey", "button"}, "expected key=value"},
		{"bad format", []string{"-sheet", themeSheet, "-format", "xml", "button"}, "invalid format value"},
		{"missing sheet", []string{"-sheet", "testdata/nope.yaml", "button"}, "reading sheet"},
		{"unknown flag", []string{"-bogus"}, "flag provided but not defined"},
		{"stdin twice", []string{"-sheet", "-", "-sheet", "-", "button"}, "more than once"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, "", tt.args...)
			assert.Equal(t, 2, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	sheetPath, err := filepath.Abs(themeSheet)
	require.NoError(t, err)
	cfg := "sheets:\n  - " + sheetPath + "\nformat: plain\npost_process:\n  scale: 2\n  keys: [padding]\n"
	cfgPath := filepath.Join(dir, ".stylo.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	code, out, errOut := runCLI(t, "", "-config", cfgPath, "-mod", "size=large", "button")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "padding=6\n")
}

func TestRun_EnvSheets(t *testing.T) {
	isolate(t)
	t.Setenv("STYLO_SHEETS", themeSheet)
	t.Setenv("STYLO_FORMAT", "yaml")

	code, out, errOut := runCLI(t, "", "text")
	require.Equal(t, 0, code, errOut)
	assert.True(t, strings.HasPrefix(out, "color: "), out)
	assert.True(t, strings.HasSuffix(out, "bold: false\n"), out)
}

func TestRun_DebugLogs(t *testing.T) {
	isolate(t)
	code, _, errOut := runCLI(t, "", "-sheet", themeSheet, "-debug", "-format", "plain", "text")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "config resolved")
	assert.Contains(t, errOut, "resolved")
}

func TestRun_Version(t *testing.T) {
	code, out, _ := runCLI(t, "", "-version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "stylo dev"))
}

func TestParseExtra(t *testing.T) {
	extra, err := parseExtra([]string{"padding=2", "bold=true", "color=#fff", "empty="})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"padding": 2, "bold": true, "color": "#fff", "empty": ""}, extra.Map())

	extra, err = parseExtra(nil)
	require.NoError(t, err)
	assert.Nil(t, extra)
}

func TestResolveFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, "plain", resolveFormat("auto", &buf))
	assert.Equal(t, "json", resolveFormat("json", &buf))
}
