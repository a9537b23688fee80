package ui

// Color accessor functions return the escape code of the active theme for a
// named color role. They read the current theme on every call so output
// written after InitTheme or SetTheme picks up the change immediately.

// ColorRed returns the escape code for error text.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the escape code for success text.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the escape code for warning text.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the escape code for primary accent text.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the escape code for informational text.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorCyan returns the escape code for highlighted values.
func ColorCyan() string { return GetCurrentTheme().Highlight }

// ColorGrey returns the escape code for secondary text.
func ColorGrey() string { return GetCurrentTheme().Secondary }

// ColorBold returns the escape code for bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the escape code for underlined text.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the escape code that clears formatting.
func ColorReset() string { return GetCurrentTheme().Reset }
