package ui

// Color accessors return the ANSI sequence for the active theme. They return
// an empty string when colors are disabled.

// ColorReset returns the sequence that clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorBold returns the bold sequence.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline sequence.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary color.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the info color.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorCyan returns the primary color; the themes use one accent hue for
// both blue and cyan roles.
func ColorCyan() string { return GetCurrentTheme().Primary }

// ColorDim returns the secondary color.
func ColorDim() string { return GetCurrentTheme().Secondary }
