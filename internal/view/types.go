package view

import (
	"html"
	"html/template"
	"maps"
	"slices"
	"strings"
)

// Element is a fixed node of the page layout
type Element struct {
	// ID is the unique element id
	ID string

	// Group names the set of siblings among which at most one is active
	Group string

	// Attrs holds static attributes such as href or data-category
	Attrs map[string]string

	// Text is the element's text content
	Text string

	// Hidden hides the element
	Hidden bool

	// Active marks the element as the selected member of its group
	Active bool

	// Children are fragments appended by a renderer
	Children []*Fragment
}

// Fragment is the markup representing one domain record
type Fragment struct {
	// ID is unique across the document
	ID string

	// Tag is the wrapping element, div when empty
	Tag string

	// Class is the wrapper's class attribute
	Class string

	// Data becomes data-* attributes on the wrapper
	Data map[string]string

	// Body is the already-escaped inner markup
	Body template.HTML

	// Hidden hides the fragment without removing it
	Hidden bool
}

var fragmentTags = map[string]bool{
	"div":     true,
	"tr":      true,
	"li":      true,
	"article": true,
}

// Clone returns a deep copy of the fragment
func (f *Fragment) Clone() *Fragment {
	c := *f
	c.Data = maps.Clone(f.Data)
	return &c
}

// HTML renders the fragment with its wrapper. Data attributes are written in
// key order so equal fragments always produce equal markup.
func (f *Fragment) HTML() template.HTML {
	tag := f.Tag
	if !fragmentTags[tag] {
		tag = "div"
	}

	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	writeAttr(&b, "id", f.ID)
	if f.Class != "" {
		writeAttr(&b, "class", f.Class)
	}
	for _, k := range slices.Sorted(maps.Keys(f.Data)) {
		writeAttr(&b, "data-"+k, f.Data[k])
	}
	if f.Hidden {
		b.WriteString(` style="display:none"`)
	}
	b.WriteString(">")
	b.WriteString(string(f.Body))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")

	return template.HTML(b.String())
}

func writeAttr(b *strings.Builder, key, value string) {
	b.WriteString(" ")
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteString(`"`)
}

// PatchOp is the kind of document mutation
type PatchOp string

const (
	PatchText     PatchOp = "text"
	PatchChildren PatchOp = "children"
	PatchVisible  PatchOp = "visible"
	PatchActive   PatchOp = "active"
	PatchScroll   PatchOp = "scroll"
	PatchAlert    PatchOp = "alert"
)

// Patch describes one mutation, streamed to the browser to mirror the document
type Patch struct {
	Op      PatchOp `json:"op"`
	ID      string  `json:"id,omitempty"`
	Text    string  `json:"text,omitempty"`
	HTML    string  `json:"html,omitempty"`
	On      bool    `json:"on"`
	Message string  `json:"message,omitempty"`
}
