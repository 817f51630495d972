package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeMode_Toggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeLight, ThemeLight.Toggle().Toggle())
}

func TestThemeMode_Icon(t *testing.T) {
	assert.Equal(t, "brightness_4", ThemeLight.Icon())
	assert.Equal(t, "brightness_7", ThemeDark.Icon())
	assert.True(t, ThemeDark.IsDark())
	assert.False(t, ThemeLight.IsDark())
}

func TestParseThemeMode(t *testing.T) {
	m, err := ParseThemeMode(" Dark ")
	assert.NoError(t, err)
	assert.Equal(t, ThemeDark, m)

	m, err = ParseThemeMode("light")
	assert.NoError(t, err)
	assert.Equal(t, ThemeLight, m)

	_, err = ParseThemeMode("sepia")
	assert.ErrorIs(t, err, ErrInvalidThemeMode)
}
