package models

// Modal identifies one of the page dialogs
type Modal string

const (
	ModalLogin  Modal = "login"
	ModalSignup Modal = "signup"
)

// ElementID returns the view element backing the modal
func (m Modal) ElementID() string {
	return string(m) + "Modal"
}

// IsValid returns true for known modals
func (m Modal) IsValid() bool {
	return m == ModalLogin || m == ModalSignup
}

// ModalState is the visibility of a modal
type ModalState string

const (
	ModalStateHidden  ModalState = "hidden"
	ModalStateVisible ModalState = "visible"
)

// IsVisible returns true if the modal is open
func (s ModalState) IsVisible() bool {
	return s == ModalStateVisible
}
