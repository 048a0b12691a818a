package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFromHex(t *testing.T) {
	c, err := ColorFromHex("#fff9ba")
	require.NoError(t, err)
	assert.Equal(t, ColorFromRGB(0xff, 0xf9, 0xba), c)
	assert.Equal(t, "#fff9ba", c.ToHex())

	c, err = ColorFromHex("#0a0")
	require.NoError(t, err)
	assert.Equal(t, ColorFromRGB(0, 0xaa, 0), c)

	_, err = ColorFromHex("fff9ba")
	assert.Error(t, err)
	_, err = ColorFromHex("#12")
	assert.Error(t, err)
}

func TestColorBlend(t *testing.T) {
	black, white := ColorBlack, ColorWhite

	assert.Equal(t, black, black.Blend(white, 0, ColorBlack))
	assert.Equal(t, white, black.Blend(white, 1, ColorBlack))

	mid := black.Blend(white, 0.5, ColorBlack)
	assert.InDelta(t, 127, int(mid.R), 1)
	assert.Equal(t, mid.R, mid.G)

	// Blending over the default color uses the supplied base.
	over := ColorDefault.Blend(white, 0.5, ColorBlack)
	assert.Equal(t, mid, over)
	assert.False(t, over.IsDefault())
}

func TestRuneWidth(t *testing.T) {
	assert.Equal(t, 1, RuneWidth('a'))
	assert.Equal(t, 2, RuneWidth('世'))
	assert.Equal(t, 0, RuneWidth('\t'))
	assert.Equal(t, 5, StringWidth("12.5k"))
}

func TestScreenRect(t *testing.T) {
	r := RectFromSize(2, 4, 10, 20)

	assert.Equal(t, 20, r.Width())
	assert.Equal(t, 10, r.Height())
	assert.True(t, r.Contains(4, 2))
	assert.False(t, r.Contains(24, 2))
	assert.True(t, r.ContainsPoint(23.5, 11.9))
	assert.False(t, r.ContainsPoint(3.9, 5))

	inner := r.Inset(1, 2, 1, 2)
	assert.Equal(t, ScreenRect{Top: 3, Left: 6, Bottom: 11, Right: 22}, inner)

	other := RectFromSize(0, 0, 5, 10)
	assert.Equal(t, ScreenRect{Top: 2, Left: 4, Bottom: 5, Right: 10}, r.Intersection(other))
	assert.True(t, r.Intersection(RectFromSize(50, 50, 1, 1)).IsEmpty())
}
