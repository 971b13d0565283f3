package view

import (
	"html/template"
	"strings"
	"sync"
)

// Document is an in-memory Handle. It holds the page state for one visitor
// and publishes every mutation as a Patch.
//
// Subscribers are called while the document lock is held so patches arrive
// in mutation order; a subscriber must not call back into the document.
type Document struct {
	mu          sync.Mutex
	elements    map[string]*Element
	order       []string
	fragments   map[string]*Fragment
	parents     map[string]string
	subscribers map[int]func(Patch)
	nextSubID   int
	alerts      []string
	scrolledTo  string
}

// NewDocument creates a document from a layout. Elements are copied.
func NewDocument(layout []*Element) (*Document, error) {
	d := &Document{
		elements:    make(map[string]*Element, len(layout)),
		fragments:   make(map[string]*Fragment),
		parents:     make(map[string]string),
		subscribers: make(map[int]func(Patch)),
	}

	for _, el := range layout {
		if el == nil || el.ID == "" {
			return nil, ErrEmptyID
		}
		if _, exists := d.elements[el.ID]; exists {
			return nil, ErrDuplicateID
		}

		c := *el
		c.Attrs = cloneAttrs(el.Attrs)
		c.Children = nil
		d.elements[el.ID] = &c
		d.order = append(d.order, el.ID)

		for _, f := range el.Children {
			d.attach(el.ID, f)
		}
	}

	return d, nil
}

func cloneAttrs(attrs map[string]string) map[string]string {
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}

// Subscribe registers fn for every future patch and returns a function that removes it
func (d *Document) Subscribe(fn func(Patch)) (unsubscribe func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextSubID
	d.nextSubID++
	d.subscribers[id] = fn

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.subscribers, id)
	}
}

// publish must be called with d.mu held
func (d *Document) publish(p Patch) {
	for _, fn := range d.subscribers {
		fn(p)
	}
}

// attach must be called with d.mu held
func (d *Document) attach(containerID string, f *Fragment) {
	c := f.Clone()
	el := d.elements[containerID]
	el.Children = append(el.Children, c)
	if c.ID != "" {
		d.fragments[c.ID] = c
		d.parents[c.ID] = containerID
	}
}

// Has reports whether an element or fragment exists
func (d *Document) Has(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, isElement := d.elements[id]
	_, isFragment := d.fragments[id]
	return isElement || isFragment
}

// Text returns an element's text
func (d *Document) Text(id string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[id]
	if !ok {
		return "", ErrElementNotFound
	}
	return el.Text, nil
}

// SetText replaces an element's text
func (d *Document) SetText(id, text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[id]
	if !ok {
		return ErrElementNotFound
	}
	el.Text = text
	d.publish(Patch{Op: PatchText, ID: id, Text: text})
	return nil
}

// Attr returns an element attribute
func (d *Document) Attr(id, key string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[id]
	if !ok {
		return "", ErrElementNotFound
	}
	return el.Attrs[key], nil
}

// ReplaceChildren swaps a container's fragments
func (d *Document) ReplaceChildren(id string, fragments []*Fragment) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[id]
	if !ok {
		return ErrElementNotFound
	}

	for _, old := range el.Children {
		if old.ID != "" {
			delete(d.fragments, old.ID)
			delete(d.parents, old.ID)
		}
	}
	el.Children = nil

	for _, f := range fragments {
		d.attach(id, f)
	}

	d.publish(Patch{Op: PatchChildren, ID: id, HTML: string(innerHTML(el))})
	return nil
}

// Children returns copies of a container's fragments
func (d *Document) Children(id string) ([]*Fragment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[id]
	if !ok {
		return nil, ErrElementNotFound
	}

	out := make([]*Fragment, 0, len(el.Children))
	for _, f := range el.Children {
		out = append(out, f.Clone())
	}
	return out, nil
}

// SetVisible shows or hides an element or fragment
func (d *Document) SetVisible(id string, visible bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if el, ok := d.elements[id]; ok {
		el.Hidden = !visible
	} else if f, ok := d.fragments[id]; ok {
		f.Hidden = !visible
	} else {
		return ErrElementNotFound
	}

	d.publish(Patch{Op: PatchVisible, ID: id, On: visible})
	return nil
}

// Visible reports whether an element or fragment is shown
func (d *Document) Visible(id string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if el, ok := d.elements[id]; ok {
		return !el.Hidden, nil
	}
	if f, ok := d.fragments[id]; ok {
		return !f.Hidden, nil
	}
	return false, ErrElementNotFound
}

// SetActive marks id active and clears the rest of its group
func (d *Document) SetActive(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[id]
	if !ok {
		return ErrElementNotFound
	}
	if el.Group == "" {
		return ErrNotGrouped
	}

	for _, otherID := range d.order {
		other := d.elements[otherID]
		if other.Group != el.Group || otherID == id || !other.Active {
			continue
		}
		other.Active = false
		d.publish(Patch{Op: PatchActive, ID: otherID, On: false})
	}

	el.Active = true
	d.publish(Patch{Op: PatchActive, ID: id, On: true})
	return nil
}

// Active reports whether an element is the active member of its group
func (d *Document) Active(id string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[id]
	if !ok {
		return false, ErrElementNotFound
	}
	return el.Active, nil
}

// ScrollTo records the scroll target and asks the browser to follow it
func (d *Document) ScrollTo(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.elements[id]; !ok {
		return ErrElementNotFound
	}
	d.scrolledTo = id
	d.publish(Patch{Op: PatchScroll, ID: id})
	return nil
}

// ScrolledTo returns the last scroll target
func (d *Document) ScrolledTo() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scrolledTo
}

// Alert records the notice and publishes it
func (d *Document) Alert(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.alerts = append(d.alerts, message)
	d.publish(Patch{Op: PatchAlert, Message: message})
}

// Alerts returns every notice shown so far, oldest first
func (d *Document) Alerts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, len(d.alerts))
	copy(out, d.alerts)
	return out
}

// InnerHTML renders a container's fragments
func (d *Document) InnerHTML(id string) (template.HTML, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[id]
	if !ok {
		return "", ErrElementNotFound
	}
	return innerHTML(el), nil
}

func innerHTML(el *Element) template.HTML {
	var b strings.Builder
	for _, f := range el.Children {
		b.WriteString(string(f.HTML()))
	}
	return template.HTML(b.String())
}
