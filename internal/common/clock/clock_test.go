package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TickerSchedulerTestSuite struct {
	suite.Suite
	scheduler *TickerScheduler
}

func (s *TickerSchedulerTestSuite) SetupTest() {
	s.scheduler = NewTickerScheduler()
}

func TestTickerSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(TickerSchedulerTestSuite))
}

func (s *TickerSchedulerTestSuite) TestStopsWhenCallbackReturnsFalse() {
	var calls atomic.Int32
	finished := make(chan struct{})

	s.scheduler.Every(time.Millisecond, func() bool {
		if calls.Add(1) == 3 {
			close(finished)
			return false
		}
		return true
	})

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		s.FailNow("callback was not called three times")
	}

	// No further ticks after the callback asked to stop
	time.Sleep(20 * time.Millisecond)
	s.Equal(int32(3), calls.Load())
}

func (s *TickerSchedulerTestSuite) TestStopFunction() {
	var calls atomic.Int32
	stop := s.scheduler.Every(time.Millisecond, func() bool {
		calls.Add(1)
		return true
	})

	s.Eventually(func() bool { return calls.Load() > 0 }, 2*time.Second, time.Millisecond)
	stop()
	stop()

	// Allow an in-flight tick to land, then the count must freeze
	time.Sleep(10 * time.Millisecond)
	frozen := calls.Load()
	time.Sleep(20 * time.Millisecond)
	s.Equal(frozen, calls.Load())
}
