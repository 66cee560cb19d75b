package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Theme values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Font style values.
const (
	FontModern      = "modern"
	FontTraditional = "traditional"
)

// Settings holds display preferences for the reader.
type Settings struct {
	Theme     string `json:"theme"`
	FontScale int    `json:"font_scale"`
	FontStyle string `json:"font_style"`
}

// Validate validates the settings.
func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Theme, validation.Required, validation.In(ThemeLight, ThemeDark)),
		validation.Field(&s.FontScale, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&s.FontStyle, validation.Required, validation.In(FontModern, FontTraditional)),
	)
}

// DefaultSettings returns the settings used before the user has saved any.
func DefaultSettings() Settings {
	return Settings{
		Theme:     ThemeLight,
		FontScale: 2,
		FontStyle: FontModern,
	}
}
