package bitmapfont

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/railboard/railboard/pkg/raster"
)

const (
	GlyphWidth   = 7
	GlyphHeight  = 11
	GlyphSpacing = 1
)

// Glyph is a fixed-size pixel grid for one character, true for inked pixels.
type Glyph struct {
	Pixels [GlyphHeight][GlyphWidth]bool
	Width  int
}

type Anchor int

const (
	AnchorLeft Anchor = iota
	AnchorCentre
	AnchorRight
)

// Font is an immutable character to pixel-grid lookup. Load validates and
// synthesises the full table up front, so a constructed Font is safe for
// unsynchronised concurrent reads.
type Font struct {
	glyphs map[rune]Glyph
}

// Load parses the base glyph set and synthesises the characters the timeline
// needs that the base set omits: uppercase letters alias their lowercase
// grids and the punctuation set uses fixed patterns. Synthesis is
// deterministic and happens entirely here, never during drawing. A malformed
// glyph definition is a startup defect and returns an error.
func Load() (*Font, error) {
	glyphs := map[rune]Glyph{}

	for character, rows := range baseGlyphs {
		glyph, err := parseGlyph(character, rows)
		if err != nil {
			return nil, err
		}

		glyphs[character] = glyph
	}

	for lower := 'a'; lower <= 'z'; lower++ {
		upper := unicode.ToUpper(lower)

		if _, exists := glyphs[upper]; exists {
			continue
		}

		glyph, found := glyphs[lower]
		if !found {
			return nil, fmt.Errorf("font table missing base glyph %q", lower)
		}

		glyphs[upper] = glyph
	}

	for character, rows := range punctuationGlyphs {
		if _, exists := glyphs[character]; exists {
			continue
		}

		glyph, err := parseGlyph(character, rows)
		if err != nil {
			return nil, err
		}

		glyphs[character] = glyph
	}

	return &Font{glyphs: glyphs}, nil
}

func parseGlyph(character rune, rows []string) (Glyph, error) {
	if len(rows) != GlyphHeight {
		return Glyph{}, fmt.Errorf("glyph %q has %d rows, expected %d", character, len(rows), GlyphHeight)
	}

	glyph := Glyph{Width: GlyphWidth}

	for rowIndex, row := range rows {
		if len(row) != GlyphWidth {
			return Glyph{}, fmt.Errorf("glyph %q row %d has %d columns, expected %d", character, rowIndex, len(row), GlyphWidth)
		}

		for columnIndex, value := range row {
			switch value {
			case 'X':
				glyph.Pixels[rowIndex][columnIndex] = true
			case '.':
			default:
				return Glyph{}, fmt.Errorf("glyph %q row %d has invalid pixel %q", character, rowIndex, value)
			}
		}
	}

	return glyph, nil
}

func (font *Font) Known(character rune) bool {
	_, exists := font.glyphs[character]

	return exists
}

// Glyph returns the pixel grid for a character. Requesting a character
// outside the loaded set is a programming defect, callers must draw from the
// known-safe set or sanitise free text first.
func (font *Font) Glyph(character rune) Glyph {
	glyph, exists := font.glyphs[character]
	if !exists {
		panic(fmt.Sprintf("bitmapfont: no glyph for character %q", character))
	}

	return glyph
}

// Sanitise replaces characters outside the font table with spaces so
// provider-sourced free text can be drawn safely.
func (font *Font) Sanitise(text string) string {
	var builder strings.Builder

	for _, character := range text {
		if font.Known(character) {
			builder.WriteRune(character)
		} else {
			builder.WriteRune(' ')
		}
	}

	return builder.String()
}

// Measure returns the device-pixel width and height of text drawn at the
// given integer scale.
func (font *Font) Measure(text string, scale int) (int, int) {
	if text == "" {
		return 0, 0
	}

	width := 0
	count := 0

	for _, character := range text {
		width += font.Glyph(character).Width * scale
		count++
	}

	width += (count - 1) * GlyphSpacing * scale

	return width, GlyphHeight * scale
}

// Draw blits text onto the canvas at (x, y), expanding each font pixel to a
// scale by scale block. The anchor shifts the string relative to x. Drawing
// writes exactly the pixels Measure accounts for.
func (font *Font) Draw(canvas *raster.Canvas, text string, x int, y int, colour raster.Colour, anchor Anchor, scale int) {
	width, _ := font.Measure(text, scale)

	switch anchor {
	case AnchorCentre:
		x -= width / 2
	case AnchorRight:
		x -= width
	}

	for _, character := range text {
		glyph := font.Glyph(character)

		for rowIndex, row := range glyph.Pixels {
			for columnIndex, inked := range row {
				if !inked {
					continue
				}

				for dy := 0; dy < scale; dy++ {
					for dx := 0; dx < scale; dx++ {
						canvas.Set(x+columnIndex*scale+dx, y+rowIndex*scale+dy, colour)
					}
				}
			}
		}

		x += (glyph.Width + GlyphSpacing) * scale
	}
}
