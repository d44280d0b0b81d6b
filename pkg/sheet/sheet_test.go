package sheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/stylo/pkg/theme"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "a.yaml", want: FormatYAML},
		{path: "a.YML", want: FormatYAML},
		{path: "dir/a.toml", want: FormatTOML},
		{path: "a.json", want: FormatJSON},
		{path: "a.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_FormatsResolveAlike(t *testing.T) {
	for _, name := range []string{"base.yaml", "base.toml", "base.json"} {
		t.Run(name, func(t *testing.T) {
			s, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)

			th := theme.New(nil)
			Apply(th, s, ModeSet)

			style, err := th.GetStyle("button", theme.Modifiers{"size": theme.Variant("large")}, nil)
			require.NoError(t, err)

			color, _ := style.Get("color")
			assert.Equal(t, "252", color)
			padding, _ := style.Get("padding")
			assert.EqualValues(t, 3, padding)
			assert.False(t, style.Has(theme.MixinsKey))
		})
	}
}

func TestLoad_YAMLKeepsOrder(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "base.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"text", "button"}, s.Names())
	assert.Equal(t, 2, s.Len())

	button, ok := s.Style("button")
	require.True(t, ok)
	assert.Equal(t, []string{"mixins", "padding", "border", "size", "disabled"}, button.Keys())
}

func TestLoad_ScalarEntryIsInvalid(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "scalar.yaml"))
	require.ErrorIs(t, err, theme.ErrInvalidStyle)

	var invalid *theme.InvalidStyleError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "broken", invalid.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorContains(t, err, "reading sheet")
}

func TestParse_Empty(t *testing.T) {
	for _, f := range []Format{FormatYAML, FormatTOML, FormatJSON} {
		s, err := Parse(nil, f)
		require.NoError(t, err, f)
		assert.Equal(t, 0, s.Len(), f)
	}
}

func TestParse_NonMappingRoot(t *testing.T) {
	_, err := Parse([]byte("- a\n- b\n"), FormatYAML)
	assert.ErrorContains(t, err, "sheet root must be a mapping")

	_, err = Parse([]byte(`{"a": 1}`), FormatJSON)
	assert.ErrorIs(t, err, theme.ErrInvalidStyle)
}

func TestLoadInto_LayersSheets(t *testing.T) {
	th := theme.New(nil)
	err := LoadInto(th,
		filepath.Join("testdata", "base.yaml"),
		filepath.Join("testdata", "override.yaml"),
	)
	require.NoError(t, err)

	style, err := th.GetStyle("button", theme.Modifiers{"primary": theme.On(), "size": theme.Variant("small")}, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"color":      "252",
		"bold":       false,
		"padding":    0,
		"border":     "thick",
		"background": "39",
	}, style.Map())
}

func TestApply_SetReplaces(t *testing.T) {
	th := theme.New(nil)
	th.SetSource("button", Producer(theme.NewStyle().Set("stale", true)))

	s, err := Parse([]byte("button: {fresh: true}"), FormatYAML)
	require.NoError(t, err)
	Apply(th, s, ModeSet)

	style, err := th.GetStyle("button", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"fresh": true}, style.Map())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "set", ModeSet.String())
	assert.Equal(t, "extend", ModeExtend.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
