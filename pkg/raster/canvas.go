package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Colour is a 1-bit pixel value.
type Colour uint8

const (
	Black Colour = 0
	White Colour = 1
)

// Canvas is a fixed-size 1-bit drawing surface with a white background.
// Every drawing operation clips to the canvas bounds, so callers can pass
// coordinates outside the surface without checking first. Rectangle
// coordinates are half-open: [x1, x2) by [y1, y2).
type Canvas struct {
	width  int
	height int
	pixels []Colour
}

func NewCanvas(width int, height int) *Canvas {
	pixels := make([]Colour, width*height)
	for index := range pixels {
		pixels[index] = White
	}

	return &Canvas{
		width:  width,
		height: height,
		pixels: pixels,
	}
}

func (canvas *Canvas) Width() int {
	return canvas.width
}

func (canvas *Canvas) Height() int {
	return canvas.height
}

func (canvas *Canvas) Set(x int, y int, colour Colour) {
	if x < 0 || x >= canvas.width || y < 0 || y >= canvas.height {
		return
	}

	canvas.pixels[y*canvas.width+x] = colour
}

// Get returns White for coordinates outside the canvas.
func (canvas *Canvas) Get(x int, y int) Colour {
	if x < 0 || x >= canvas.width || y < 0 || y >= canvas.height {
		return White
	}

	return canvas.pixels[y*canvas.width+x]
}

func (canvas *Canvas) FillRect(x1 int, y1 int, x2 int, y2 int, colour Colour) {
	for y := max(0, y1); y < min(canvas.height, y2); y++ {
		for x := max(0, x1); x < min(canvas.width, x2); x++ {
			canvas.pixels[y*canvas.width+x] = colour
		}
	}
}

// Checkerboard fills the rectangle with a 1 pixel alternating pattern inside
// a solid black border. Parity follows absolute canvas coordinates so
// adjoining regions mesh.
func (canvas *Canvas) Checkerboard(x1 int, y1 int, x2 int, y2 int) {
	for y := max(0, y1); y < min(canvas.height, y2); y++ {
		for x := max(0, x1); x < min(canvas.width, x2); x++ {
			if y == y1 || y == y2-1 || x == x1 || x == x2-1 {
				canvas.pixels[y*canvas.width+x] = Black
			} else if (x+y)%2 == 0 {
				canvas.pixels[y*canvas.width+x] = Black
			} else {
				canvas.pixels[y*canvas.width+x] = White
			}
		}
	}
}

func (canvas *Canvas) HLine(x1 int, x2 int, y int, colour Colour) {
	if y < 0 || y >= canvas.height {
		return
	}

	for x := max(0, x1); x < min(canvas.width, x2); x++ {
		canvas.pixels[y*canvas.width+x] = colour
	}
}

// VLine draws a vertical line. Dashed lines draw 4 pixels on, 4 pixels off.
func (canvas *Canvas) VLine(x int, y1 int, y2 int, colour Colour, dashed bool) {
	if x < 0 || x >= canvas.width {
		return
	}

	for y := max(0, y1); y < min(canvas.height, y2); y++ {
		if dashed && (y/4)%2 == 1 {
			continue
		}

		canvas.pixels[y*canvas.width+x] = colour
	}
}

func (canvas *Canvas) ColorModel() color.Model {
	return color.GrayModel
}

func (canvas *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, canvas.width, canvas.height)
}

func (canvas *Canvas) At(x int, y int) color.Color {
	if canvas.Get(x, y) == Black {
		return color.Gray{Y: 0}
	}

	return color.Gray{Y: 255}
}

func (canvas *Canvas) EncodePNG(writer io.Writer) error {
	return png.Encode(writer, canvas)
}
