package counter

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_animator.go github.com/KirkDiggler/gameportal/internal/services/counter Animator

// Animator counts displayed numbers up from zero
type Animator interface {
	// Animate interpolates an element's text from 0 to the target over a fixed
	// number of ticks. A running animation on the same element is cancelled first.
	Animate(ctx context.Context, input *AnimateInput) (*AnimateOutput, error)
}
