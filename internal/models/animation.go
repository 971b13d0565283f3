package models

// AnimationJob tracks one counter animation from 0 to Target
type AnimationJob struct {
	// ElementID is the display element being animated
	ElementID string

	// Target is the value the counter settles on
	Target float64

	// Current is the unrounded value after the latest tick
	Current float64

	// IncrementPerTick is added to Current on every tick
	IncrementPerTick float64
}

// Done returns true once the counter has reached its target
func (j *AnimationJob) Done() bool {
	return j.Current >= j.Target
}
