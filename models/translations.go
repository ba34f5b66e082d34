package models

// Locales lists the locale codes every translatable field must carry.
// Order matters for validation error output.
var Locales = []string{"en", "ar"}

const DefaultLocale = "en"

// Translations maps a locale code to the field value in that locale.
// Stored as a JSON text column via GORM's json serializer.
type Translations map[string]string

// Get returns the value for the given locale, falling back to the
// default locale when the requested one is empty or missing.
func (t Translations) Get(locale string) string {
	if v, ok := t[locale]; ok && v != "" {
		return v
	}
	return t[DefaultLocale]
}

// Missing returns the configured locales that have no value in t.
func (t Translations) Missing() []string {
	var missing []string
	for _, locale := range Locales {
		if v, ok := t[locale]; !ok || v == "" {
			missing = append(missing, locale)
		}
	}
	return missing
}

// ValidLocale reports whether the code is one of the configured locales.
func ValidLocale(code string) bool {
	for _, locale := range Locales {
		if locale == code {
			return true
		}
	}
	return false
}
