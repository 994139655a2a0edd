package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGilded_ColorPalette(t *testing.T) {
	th := NewGilded()
	require.Equal(t, "gilded", th.Name)

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Primary", th.Primary, "#eab308"},
		{"Tertiary", th.Tertiary, "#fef08a"},
		{"BgBase", th.BgBase, "#0f172a"},
		{"FgSubtle", th.FgSubtle, "#94a3b8"},
		{"Error", th.Error, "#f87171"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestSet(t *testing.T) {
	t.Cleanup(func() { Set(DefaultName) })

	require.Equal(t, DefaultName, Current().Name)

	require.True(t, Set("catppuccin-mocha"))
	require.Equal(t, "catppuccin-mocha", Current().Name)

	require.False(t, Set("solarized"))
	require.Equal(t, "catppuccin-mocha", Current().Name, "unknown theme keeps current")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"catppuccin-mocha", "gilded"}, Names())
}

func TestStyles_Lazy(t *testing.T) {
	th := NewGilded()
	s1 := th.S()
	s2 := th.S()
	assert.Same(t, s1, s2)
}

func TestInterpolateColor(t *testing.T) {
	assert.Equal(t, "#000000", InterpolateColor("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", InterpolateColor("#000000", "#ffffff", 1))
	assert.Equal(t, "#7f7f7f", InterpolateColor("#000000", "#ffffff", 0.5))
}

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#eab308")
	assert.Equal(t, uint8(0xea), r)
	assert.Equal(t, uint8(0xb3), g)
	assert.Equal(t, uint8(0x08), b)

	r, g, b = ParseHexColor("bad")
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestGradient(t *testing.T) {
	assert.Nil(t, Gradient("#000000", "#ffffff", 0))
	assert.Equal(t, []string{"#000000"}, Gradient("#000000", "#ffffff", 1))
	assert.Equal(t, []string{"#000000", "#7f7f7f", "#ffffff"}, Gradient("#000000", "#ffffff", 3))
}
