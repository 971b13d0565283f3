package clock

import (
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_scheduler.go github.com/KirkDiggler/gameportal/internal/common/clock Scheduler

// Scheduler runs periodic callbacks
type Scheduler interface {
	// Every calls fn once per interval until fn returns false or the
	// returned stop function is called. stop is safe to call more than once.
	Every(interval time.Duration, fn func() bool) (stop func())
}

// TickerScheduler implements the Scheduler interface using time.Ticker,
// one goroutine per scheduled callback
type TickerScheduler struct{}

// NewTickerScheduler returns a wall-clock scheduler
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

// Every starts a ticker goroutine that drives fn
func (s *TickerScheduler) Every(interval time.Duration, fn func() bool) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	var once sync.Once
	stop := func() {
		once.Do(func() { close(done) })
	}

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if !fn() {
					stop()
					return
				}
			}
		}
	}()

	return stop
}
