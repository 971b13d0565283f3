package view

// Handle is the display surface the renderer, counter animator and
// interaction controller mutate. Element and fragment ids share one namespace.
type Handle interface {
	// Has reports whether an element or fragment with the id exists
	Has(id string) bool

	// Text returns the text content of an element
	Text(id string) (string, error)

	// SetText replaces the text content of an element
	SetText(id, text string) error

	// Attr returns an attribute of an element, or "" when unset
	Attr(id, key string) (string, error)

	// ReplaceChildren drops a container's children and appends fragments in order
	ReplaceChildren(id string, fragments []*Fragment) error

	// Children returns copies of a container's fragments in display order
	Children(id string) ([]*Fragment, error)

	// SetVisible shows or hides an element or fragment
	SetVisible(id string, visible bool) error

	// Visible reports whether an element or fragment is shown
	Visible(id string) (bool, error)

	// SetActive marks an element active and every other member of its group inactive
	SetActive(id string) error

	// Active reports whether an element is marked active
	Active(id string) (bool, error)

	// ScrollTo brings an element into view
	ScrollTo(id string) error

	// Alert shows a blocking notice to the visitor
	Alert(message string)
}
