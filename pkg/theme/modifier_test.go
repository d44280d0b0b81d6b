package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModifier(t *testing.T) {
	tests := []struct {
		in        string
		wantKeyed bool
		wantOn    bool
		wantKey   string
	}{
		{in: "true", wantOn: true},
		{in: "TRUE", wantOn: true},
		{in: "false"},
		{in: "large", wantKeyed: true, wantKey: "large"},
		{in: "", wantKeyed: true, wantKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m := ParseModifier(tt.in)
			assert.Equal(t, tt.wantKeyed, m.IsKeyed())
			assert.Equal(t, tt.wantOn, m.Enabled())
			assert.Equal(t, tt.wantKey, m.Key())
		})
	}
}

func TestParseModifiers(t *testing.T) {
	mods, err := ParseModifiers([]string{"size=large", "disabled", "hover=false"})
	require.NoError(t, err)

	assert.Equal(t, Modifiers{
		"size":     Variant("large"),
		"disabled": On(),
		"hover":    Off(),
	}, mods)
	assert.Equal(t, "disabled=true,hover=false,size=large", mods.String())
}

func TestParseModifiers_EmptyKey(t *testing.T) {
	_, err := ParseModifiers([]string{"=x"})
	assert.ErrorContains(t, err, "empty key")
}

func TestModifier_KeyedIsNeverEnabled(t *testing.T) {
	assert.False(t, Variant("true").Enabled())
	assert.True(t, Bool(true).Enabled())
	assert.False(t, Bool(false).Enabled())
}
