package bitmapfont

var processFont *Font

// Setup loads the process-wide font table. Call once at startup before any
// render, calling again is a no-op. Kept as an explicit call rather than an
// init side effect so tests control load timing.
func Setup() error {
	if processFont != nil {
		return nil
	}

	font, err := Load()
	if err != nil {
		return err
	}

	processFont = font

	return nil
}

// Get returns the process-wide font table loaded by Setup.
func Get() *Font {
	if processFont == nil {
		panic("bitmapfont: Setup has not been called")
	}

	return processFont
}
