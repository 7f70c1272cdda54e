package domain

import (
	"context"
	"strings"
)

// DarkModeKey is the storage key of the theme preference
const DarkModeKey = "darkMode"

// ThemeSource tells where a resolved theme came from
type ThemeSource string

const (
	ThemeFromStorage ThemeSource = "stored"
	ThemeFromSystem  ThemeSource = "system"
	ThemeFromDefault ThemeSource = "default"
)

type ThemeSettings struct {
	DarkMode bool        `json:"dark_mode"`
	Source   ThemeSource `json:"source"`
}

// ColorScheme is the OS-level color scheme hint sent by the client
type ColorScheme int

const (
	ColorSchemeUnknown ColorScheme = iota
	ColorSchemeLight
	ColorSchemeDark
)

// ParseColorScheme reads a prefers-color-scheme value ("dark" / "light")
func ParseColorScheme(v string) ColorScheme {
	switch strings.ToLower(strings.Trim(strings.TrimSpace(v), `"`)) {
	case "dark":
		return ColorSchemeDark
	case "light":
		return ColorSchemeLight
	default:
		return ColorSchemeUnknown
	}
}

// SettingsRepository persists string preferences per visitor
type SettingsRepository interface {
	Get(ctx context.Context, visitorID, key string) (string, bool, error)
	Set(ctx context.Context, visitorID, key, value string) error
}

type SettingsUsecase interface {
	// ResolveTheme reads the stored preference, falling back to the system scheme, then light
	ResolveTheme(ctx context.Context, visitorID string, system ColorScheme) (ThemeSettings, error)
	// SetDarkMode writes the preference through to storage
	SetDarkMode(ctx context.Context, visitorID string, dark bool) (ThemeSettings, error)
	// ToggleTheme flips the resolved preference and writes it through
	ToggleTheme(ctx context.Context, visitorID string, system ColorScheme) (ThemeSettings, error)
}
