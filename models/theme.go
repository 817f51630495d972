package models

import "strings"

// ThemeMode is the active UI color scheme
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// ParseThemeMode converts a string into a ThemeMode
func ParseThemeMode(s string) (ThemeMode, error) {
	switch ThemeMode(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", ErrInvalidThemeMode
}

// Toggle returns the opposite mode
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Icon returns the name of the icon shown on the toggle button.
// Dark mode offers the "switch to light" icon and vice versa.
func (m ThemeMode) Icon() string {
	if m == ThemeDark {
		return "brightness_7"
	}
	return "brightness_4"
}

// IsDark reports whether the mode is dark
func (m ThemeMode) IsDark() bool {
	return m == ThemeDark
}
