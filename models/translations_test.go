package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslationsGet(t *testing.T) {
	name := Translations{"en": "Electronics", "ar": "إلكترونيات"}

	assert.Equal(t, "Electronics", name.Get("en"))
	assert.Equal(t, "إلكترونيات", name.Get("ar"))

	// unknown or empty locales fall back to the default
	assert.Equal(t, "Electronics", name.Get("fr"))
	assert.Equal(t, "Electronics", Translations{"en": "Electronics", "ar": ""}.Get("ar"))
}

func TestTranslationsMissing(t *testing.T) {
	assert.Empty(t, Translations{"en": "a", "ar": "b"}.Missing())
	assert.Equal(t, []string{"ar"}, Translations{"en": "a"}.Missing())
	assert.Equal(t, []string{"en", "ar"}, Translations{}.Missing())
	assert.Equal(t, []string{"en"}, Translations{"en": "", "ar": "b"}.Missing())
}

func TestValidLocale(t *testing.T) {
	assert.True(t, ValidLocale("en"))
	assert.True(t, ValidLocale("ar"))
	assert.False(t, ValidLocale("fr"))
	assert.False(t, ValidLocale(""))
}
