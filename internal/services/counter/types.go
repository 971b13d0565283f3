package counter

import (
	"time"

	"github.com/KirkDiggler/gameportal/internal/common/clock"
	"github.com/KirkDiggler/gameportal/internal/common/locale"
	"github.com/KirkDiggler/gameportal/internal/view"
)

const (
	// DefaultSteps is the number of ticks an animation takes
	DefaultSteps = 100

	// DefaultInterval is the time between ticks
	DefaultInterval = 20 * time.Millisecond
)

// Config holds configuration for the counter animator
type Config struct {
	// View is the display surface holding the counters
	View view.Handle

	// Scheduler drives the ticks
	Scheduler clock.Scheduler

	// Printer formats displayed values, defaults to American English
	Printer *locale.Printer

	// Steps is the number of ticks per animation (optional)
	Steps int

	// Interval is the time between ticks (optional)
	Interval time.Duration
}

// AnimateInput contains parameters for animating a counter
type AnimateInput struct {
	// ElementID is the element whose text is animated
	ElementID string

	// Target is the final value; fractional targets settle on floor(Target)
	Target float64
}

// AnimateOutput contains the result of starting an animation
type AnimateOutput struct {
	// Done is closed when the animation completes or is cancelled
	Done <-chan struct{}
}
