package counter

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/KirkDiggler/gameportal/internal/common/clock"
	"github.com/KirkDiggler/gameportal/internal/common/locale"
	"github.com/KirkDiggler/gameportal/internal/models"
	"github.com/KirkDiggler/gameportal/internal/view"
)

// service implements the Animator interface
type service struct {
	view      view.Handle
	scheduler clock.Scheduler
	printer   *locale.Printer
	steps     int
	interval  time.Duration

	mu   sync.Mutex
	jobs map[string]*job
}

// job is a running animation
type job struct {
	models.AnimationJob

	ctx  context.Context
	done chan struct{}

	mu        sync.Mutex
	stop      func()
	cancelled bool
	finished  bool
	closeOnce sync.Once
}

// New creates a new counter animator
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.View == nil {
		return nil, ErrNilView
	}
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}

	printer := cfg.Printer
	if printer == nil {
		printer = locale.New(locale.DefaultTag)
	}

	steps := cfg.Steps
	if steps <= 0 {
		steps = DefaultSteps
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &service{
		view:      cfg.View,
		scheduler: cfg.Scheduler,
		printer:   printer,
		steps:     steps,
		interval:  interval,
		jobs:      make(map[string]*job),
	}, nil
}

// Animate starts counting the element up to the target
func (s *service) Animate(ctx context.Context, input *AnimateInput) (*AnimateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.ElementID == "" {
		return nil, ErrEmptyElementID
	}
	if input.Target < 0 || math.IsNaN(input.Target) || math.IsInf(input.Target, 0) {
		return nil, ErrInvalidTarget
	}
	if !s.view.Has(input.ElementID) {
		return nil, ErrElementNotFound
	}

	j := &job{
		AnimationJob: models.AnimationJob{
			ElementID:        input.ElementID,
			Target:           input.Target,
			IncrementPerTick: input.Target / float64(s.steps),
		},
		ctx:  ctx,
		done: make(chan struct{}),
	}

	s.mu.Lock()
	if prev, ok := s.jobs[input.ElementID]; ok {
		prev.cancel()
	}
	s.jobs[input.ElementID] = j
	s.mu.Unlock()

	stop := s.scheduler.Every(s.interval, func() bool {
		return s.tick(j)
	})
	j.setStop(stop)

	return &AnimateOutput{Done: j.done}, nil
}

// tick advances one job and reports whether it should keep running.
// The job lock is held across the view update so a cancelled job can never
// write after its replacement has started.
func (s *service) tick(j *job) bool {
	j.mu.Lock()
	if j.cancelled || j.finished {
		j.mu.Unlock()
		return false
	}
	if j.ctx.Err() != nil {
		j.mu.Unlock()
		s.release(j)
		j.cancel()
		return false
	}

	j.Current += j.IncrementPerTick
	shown := j.Current
	if j.AnimationJob.Done() {
		// Snap to the exact target to hide floating-point drift
		shown = j.Target
		j.finished = true
	}

	err := s.view.SetText(j.ElementID, s.printer.Int(int64(math.Floor(shown))))
	finished := j.finished
	j.mu.Unlock()

	if err != nil {
		slog.Warn("counter element disappeared, stopping animation",
			"element", j.ElementID,
			"error", err)
		s.release(j)
		j.cancel()
		return false
	}

	if finished {
		s.release(j)
		j.close()
		return false
	}
	return true
}

// release forgets j if it is still the element's current job
func (s *service) release(j *job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.jobs[j.ElementID] == j {
		delete(s.jobs, j.ElementID)
	}
}

func (j *job) setStop(stop func()) {
	j.mu.Lock()
	j.stop = stop
	cancelled := j.cancelled
	j.mu.Unlock()

	if cancelled && stop != nil {
		stop()
	}
}

func (j *job) cancel() {
	j.mu.Lock()
	alreadyCancelled := j.cancelled
	j.cancelled = true
	stop := j.stop
	j.mu.Unlock()

	if alreadyCancelled {
		return
	}
	if stop != nil {
		stop()
	}
	j.close()
}

func (j *job) close() {
	j.closeOnce.Do(func() { close(j.done) })
}
