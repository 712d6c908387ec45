package bitmapfont

// Base character set of the departure-board font. Each glyph is an 11 row
// grid of 7 columns, 'X' for an inked pixel. Uppercase letters and the fixed
// punctuation set are synthesised at load time, see Load.
var baseGlyphs = map[rune][]string{
	'a': {
		".......",
		".......",
		".......",
		".......",
		"..XXX..",
		".....X.",
		"..XXXX.",
		".X...X.",
		"..XXXX.",
		".......",
		".......",
	},
	'b': {
		".......",
		".X.....",
		".X.....",
		".X.....",
		".XXXX..",
		".X...X.",
		".X...X.",
		".X...X.",
		".XXXX..",
		".......",
		".......",
	},
	'c': {
		".......",
		".......",
		".......",
		".......",
		"..XXX..",
		".X...X.",
		".X.....",
		".X...X.",
		"..XXX..",
		".......",
		".......",
	},
	'd': {
		".......",
		".....X.",
		".....X.",
		".....X.",
		"..XXXX.",
		".X...X.",
		".X...X.",
		".X...X.",
		"..XXXX.",
		".......",
		".......",
	},
	'e': {
		".......",
		".......",
		".......",
		".......",
		"..XXX..",
		".X...X.",
		".XXXXX.",
		".X.....",
		"..XXXX.",
		".......",
		".......",
	},
	'f': {
		".......",
		"...XXX.",
		"..X....",
		"..X....",
		".XXXX..",
		"..X....",
		"..X....",
		"..X....",
		"..X....",
		".......",
		".......",
	},
	'g': {
		".......",
		".......",
		".......",
		".......",
		"..XXXX.",
		".X...X.",
		".X...X.",
		".X...X.",
		"..XXXX.",
		".....X.",
		"..XXX..",
	},
	'h': {
		".......",
		".X.....",
		".X.....",
		".X.....",
		".XXXX..",
		".X...X.",
		".X...X.",
		".X...X.",
		".X...X.",
		".......",
		".......",
	},
	'i': {
		".......",
		".......",
		"...X...",
		".......",
		"..XX...",
		"...X...",
		"...X...",
		"...X...",
		"..XXX..",
		".......",
		".......",
	},
	'j': {
		".......",
		".......",
		"....X..",
		".......",
		"...XX..",
		"....X..",
		"....X..",
		"....X..",
		"....X..",
		".X..X..",
		"..XX...",
	},
	'k': {
		".......",
		".X.....",
		".X.....",
		".X.....",
		".X..X..",
		".X.X...",
		".XX....",
		".X.X...",
		".X..X..",
		".......",
		".......",
	},
	'l': {
		".......",
		"..XX...",
		"...X...",
		"...X...",
		"...X...",
		"...X...",
		"...X...",
		"...X...",
		"..XXX..",
		".......",
		".......",
	},
	'm': {
		".......",
		".......",
		".......",
		".......",
		".XX.X..",
		".X.X.X.",
		".X.X.X.",
		".X.X.X.",
		".X.X.X.",
		".......",
		".......",
	},
	'n': {
		".......",
		".......",
		".......",
		".......",
		".XXXX..",
		".X...X.",
		".X...X.",
		".X...X.",
		".X...X.",
		".......",
		".......",
	},
	'o': {
		".......",
		".......",
		".......",
		".......",
		"..XXX..",
		".X...X.",
		".X...X.",
		".X...X.",
		"..XXX..",
		".......",
		".......",
	},
	'p': {
		".......",
		".......",
		".......",
		".......",
		".XXXX..",
		".X...X.",
		".X...X.",
		".XXXX..",
		".X.....",
		".X.....",
		".X.....",
	},
	'q': {
		".......",
		".......",
		".......",
		".......",
		"..XXXX.",
		".X...X.",
		".X...X.",
		"..XXXX.",
		".....X.",
		".....X.",
		".....X.",
	},
	'r': {
		".......",
		".......",
		".......",
		".......",
		".X.XX..",
		".XX..X.",
		".X.....",
		".X.....",
		".X.....",
		".......",
		".......",
	},
	's': {
		".......",
		".......",
		".......",
		".......",
		"..XXXX.",
		".X.....",
		"..XXX..",
		".....X.",
		".XXXX..",
		".......",
		".......",
	},
	't': {
		".......",
		".......",
		"..X....",
		"..X....",
		".XXXX..",
		"..X....",
		"..X....",
		"..X....",
		"...XX..",
		".......",
		".......",
	},
	'u': {
		".......",
		".......",
		".......",
		".......",
		".X...X.",
		".X...X.",
		".X...X.",
		".X...X.",
		"..XXXX.",
		".......",
		".......",
	},
	'v': {
		".......",
		".......",
		".......",
		".......",
		".X...X.",
		".X...X.",
		".X...X.",
		"..X.X..",
		"...X...",
		".......",
		".......",
	},
	'w': {
		".......",
		".......",
		".......",
		".......",
		".X...X.",
		".X...X.",
		".X.X.X.",
		".X.X.X.",
		"..X.X..",
		".......",
		".......",
	},
	'x': {
		".......",
		".......",
		".......",
		".......",
		".X...X.",
		"..X.X..",
		"...X...",
		"..X.X..",
		".X...X.",
		".......",
		".......",
	},
	'y': {
		".......",
		".......",
		".......",
		".......",
		".X...X.",
		".X...X.",
		".X...X.",
		".X...X.",
		"..XXXX.",
		".....X.",
		"..XXX..",
	},
	'z': {
		".......",
		".......",
		".......",
		".......",
		".XXXXX.",
		"....X..",
		"...X...",
		"..X....",
		".XXXXX.",
		".......",
		".......",
	},
	'0': {
		".......",
		"..XXX..",
		".X...X.",
		".X..XX.",
		".X.X.X.",
		".XX..X.",
		".X...X.",
		".X...X.",
		"..XXX..",
		".......",
		".......",
	},
	'1': {
		".......",
		"...X...",
		"..XX...",
		"...X...",
		"...X...",
		"...X...",
		"...X...",
		"...X...",
		"..XXX..",
		".......",
		".......",
	},
	'2': {
		".......",
		"..XXX..",
		".X...X.",
		".....X.",
		"....X..",
		"...X...",
		"..X....",
		".X.....",
		".XXXXX.",
		".......",
		".......",
	},
	'3': {
		".......",
		"..XXX..",
		".X...X.",
		".....X.",
		"...XX..",
		".....X.",
		".....X.",
		".X...X.",
		"..XXX..",
		".......",
		".......",
	},
	'4': {
		".......",
		"....X..",
		"...XX..",
		"..X.X..",
		".X..X..",
		".XXXXX.",
		"....X..",
		"....X..",
		"....X..",
		".......",
		".......",
	},
	'5': {
		".......",
		".XXXXX.",
		".X.....",
		".X.....",
		".XXXX..",
		".....X.",
		".....X.",
		".X...X.",
		"..XXX..",
		".......",
		".......",
	},
	'6': {
		".......",
		"..XXX..",
		".X.....",
		".X.....",
		".XXXX..",
		".X...X.",
		".X...X.",
		".X...X.",
		"..XXX..",
		".......",
		".......",
	},
	'7': {
		".......",
		".XXXXX.",
		".....X.",
		"....X..",
		"....X..",
		"...X...",
		"...X...",
		"..X....",
		"..X....",
		".......",
		".......",
	},
	'8': {
		".......",
		"..XXX..",
		".X...X.",
		".X...X.",
		"..XXX..",
		".X...X.",
		".X...X.",
		".X...X.",
		"..XXX..",
		".......",
		".......",
	},
	'9': {
		".......",
		"..XXX..",
		".X...X.",
		".X...X.",
		"..XXXX.",
		".....X.",
		".....X.",
		".X...X.",
		"..XXX..",
		".......",
		".......",
	},
}

// Punctuation required for timeline labels but absent from the base set.
// Patterns follow the departure-board source data.
var punctuationGlyphs = map[rune][]string{
	' ': {
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
	},
	':': {
		".......",
		".......",
		"...X...",
		"...X...",
		".......",
		".......",
		"...X...",
		"...X...",
		".......",
		".......",
		".......",
	},
	'-': {
		".......",
		".......",
		".......",
		".......",
		".XXXXX.",
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
	},
	'>': {
		".......",
		".X.....",
		"..X....",
		"...X...",
		"....X..",
		"...X...",
		"..X....",
		".X.....",
		".......",
		".......",
		".......",
	},
	'#': {
		".......",
		"..X.X..",
		"..X.X..",
		".XXXXX.",
		"..X.X..",
		".XXXXX.",
		"..X.X..",
		"..X.X..",
		".......",
		".......",
		".......",
	},
}
