package portfolio

// Theme is the colour scheme a visitor picked.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"

	// DefaultTheme applies until a visitor toggles.
	DefaultTheme = ThemeDark
)

// ParseTheme maps a stored value to a Theme. Anything unknown is DefaultTheme.
func ParseTheme(s string) Theme {
	switch Theme(s) {
	case ThemeDark, ThemeLight:
		return Theme(s)
	default:
		return DefaultTheme
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
