package ui

// Color* functions expose the active theme's escape codes directly, for
// call sites that build ad hoc fmt.Sprintf strings instead of composing a
// lipgloss.Style.

// ColorGreen returns the active theme's success-color escape code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the active theme's error-color escape code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorYellow returns the active theme's warning-color escape code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorCyan returns the active theme's info-color escape code.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorUnderline returns the active theme's underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorBold returns the active theme's bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorBlue returns the active theme's primary (blue) escape code.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the active theme's secondary escape code.
func ColorMagenta() string { return GetCurrentTheme().Secondary }

// ColorReset returns the active theme's reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
