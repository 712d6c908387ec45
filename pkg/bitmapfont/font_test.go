package bitmapfont_test

import (
	"testing"

	"github.com/railboard/railboard/pkg/bitmapfont"
	"github.com/railboard/railboard/pkg/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFont(t *testing.T) *bitmapfont.Font {
	t.Helper()

	font, err := bitmapfont.Load()
	require.NoError(t, err)

	return font
}

func TestFullCharacterCoverage(t *testing.T) {
	font := loadFont(t)

	var characters []rune
	for c := 'a'; c <= 'z'; c++ {
		characters = append(characters, c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		characters = append(characters, c)
	}
	for c := '0'; c <= '9'; c++ {
		characters = append(characters, c)
	}
	characters = append(characters, ' ', ':', '-', '>', '#')

	for _, character := range characters {
		assert.True(t, font.Known(character), "missing glyph %q", character)
		assert.NotPanics(t, func() { font.Glyph(character) })
	}
}

func TestUppercaseAliasesLowercase(t *testing.T) {
	font := loadFont(t)

	assert.Equal(t, font.Glyph('n'), font.Glyph('N'))
	assert.Equal(t, font.Glyph('y'), font.Glyph('Y'))
}

func TestSynthesisIsIdempotent(t *testing.T) {
	first := loadFont(t)
	second := loadFont(t)

	assert.Equal(t, first.Glyph('#'), second.Glyph('#'))
	assert.Equal(t, first.Glyph('Q'), second.Glyph('Q'))
}

func TestUnknownGlyphPanics(t *testing.T) {
	font := loadFont(t)

	assert.Panics(t, func() { font.Glyph('é') })
}

func TestSanitiseReplacesUnknownCharacters(t *testing.T) {
	font := loadFont(t)

	assert.Equal(t, "NE Regional 123", font.Sanitise("NE Regional 123"))
	assert.Equal(t, "Caf  Car", font.Sanitise("Café Car"))
}

func TestMeasure(t *testing.T) {
	font := loadFont(t)

	width, height := font.Measure("NYP", 1)
	assert.Equal(t, 3*bitmapfont.GlyphWidth+2*bitmapfont.GlyphSpacing, width)
	assert.Equal(t, bitmapfont.GlyphHeight, height)

	width2, height2 := font.Measure("NYP", 2)
	assert.Equal(t, 2*width, width2)
	assert.Equal(t, 2*bitmapfont.GlyphHeight, height2)

	emptyWidth, emptyHeight := font.Measure("", 2)
	assert.Zero(t, emptyWidth)
	assert.Zero(t, emptyHeight)
}

func TestDrawStaysWithinMeasuredBox(t *testing.T) {
	font := loadFont(t)

	for _, scale := range []int{1, 2} {
		text := "10:45"
		width, height := font.Measure(text, scale)

		canvas := raster.NewCanvas(width+20, height+20)
		font.Draw(canvas, text, 10, 10, raster.Black, bitmapfont.AnchorLeft, scale)

		for y := 0; y < canvas.Height(); y++ {
			for x := 0; x < canvas.Width(); x++ {
				if canvas.Get(x, y) == raster.Black {
					assert.GreaterOrEqual(t, x, 10)
					assert.Less(t, x, 10+width)
					assert.GreaterOrEqual(t, y, 10)
					assert.Less(t, y, 10+height)
				}
			}
		}
	}
}

func TestDrawScaleExpandsPixelBlocks(t *testing.T) {
	font := loadFont(t)

	single := raster.NewCanvas(20, 20)
	font.Draw(single, "1", 0, 0, raster.Black, bitmapfont.AnchorLeft, 1)

	scaled := raster.NewCanvas(40, 40)
	font.Draw(scaled, "1", 0, 0, raster.Black, bitmapfont.AnchorLeft, 2)

	for y := 0; y < bitmapfont.GlyphHeight; y++ {
		for x := 0; x < bitmapfont.GlyphWidth; x++ {
			colour := single.Get(x, y)

			assert.Equal(t, colour, scaled.Get(2*x, 2*y))
			assert.Equal(t, colour, scaled.Get(2*x+1, 2*y))
			assert.Equal(t, colour, scaled.Get(2*x, 2*y+1))
			assert.Equal(t, colour, scaled.Get(2*x+1, 2*y+1))
		}
	}
}

func TestDrawAnchors(t *testing.T) {
	font := loadFont(t)
	text := "NYP"
	width, _ := font.Measure(text, 1)

	leftmost := func(canvas *raster.Canvas) int {
		for x := 0; x < canvas.Width(); x++ {
			for y := 0; y < canvas.Height(); y++ {
				if canvas.Get(x, y) == raster.Black {
					return x
				}
			}
		}
		return -1
	}

	left := raster.NewCanvas(100, 20)
	font.Draw(left, text, 50, 0, raster.Black, bitmapfont.AnchorLeft, 1)

	centre := raster.NewCanvas(100, 20)
	font.Draw(centre, text, 50, 0, raster.Black, bitmapfont.AnchorCentre, 1)

	right := raster.NewCanvas(100, 20)
	font.Draw(right, text, 50, 0, raster.Black, bitmapfont.AnchorRight, 1)

	assert.Equal(t, leftmost(left)-width/2, leftmost(centre))
	assert.Equal(t, leftmost(left)-width, leftmost(right))
}

func TestSetupProvidesProcessFont(t *testing.T) {
	require.NoError(t, bitmapfont.Setup())
	require.NoError(t, bitmapfont.Setup())

	font := bitmapfont.Get()
	assert.True(t, font.Known('A'))
}
