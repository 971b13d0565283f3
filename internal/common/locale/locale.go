// Package locale formats display numbers for a visitor's language.
package locale

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultTag is used when a configured or requested language cannot be parsed
var DefaultTag = language.AmericanEnglish

var supported = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
	language.Hindi,
}

var matcher = language.NewMatcher(supported)

// Printer formats integers with locale thousands separators
type Printer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a printer for the given tag
func New(tag language.Tag) *Printer {
	return &Printer{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// Parse returns a printer for a BCP 47 language string, falling back to DefaultTag
func Parse(value string) *Printer {
	tag, err := language.Parse(value)
	if err != nil {
		return New(DefaultTag)
	}
	return New(tag)
}

// FromRequest resolves the printer for a request's Accept-Language header.
// fallback is used when the header is absent or matches nothing we support.
func FromRequest(r *http.Request, fallback *Printer) *Printer {
	accept := r.Header.Get("Accept-Language")
	if accept == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return New(supported[idx])
}

// Tag returns the printer's language
func (p *Printer) Tag() language.Tag {
	return p.tag
}

// Int formats n with grouping, e.g. 15420 -> "15,420" in English
func (p *Printer) Int(n int64) string {
	return p.printer.Sprintf("%d", n)
}
