package locale

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestPrinterInt(t *testing.T) {
	p := New(language.AmericanEnglish)

	assert.Equal(t, "0", p.Int(0))
	assert.Equal(t, "50", p.Int(50))
	assert.Equal(t, "15,420", p.Int(15420))
	assert.Equal(t, "1,234,567", p.Int(1234567))
}

func TestParseFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTag, Parse("not a language!!").Tag())
	assert.Equal(t, language.German, Parse("de").Tag())
}

func TestFromRequest(t *testing.T) {
	fallback := New(DefaultTag)

	r := httptest.NewRequest("GET", "/", nil)
	assert.Same(t, fallback, FromRequest(r, fallback))

	r.Header.Set("Accept-Language", "de-DE,de;q=0.9,en;q=0.5")
	assert.Equal(t, language.German, FromRequest(r, fallback).Tag())

	r.Header.Set("Accept-Language", "xx-YY")
	assert.Same(t, fallback, FromRequest(r, fallback))
}
