package game

import (
	"sync"
	"time"
)

// Timer ticks at a fixed rate until stopped. A stopped timer's channel is nil,
// so a select on it never fires.
type Timer struct {
	Interval time.Duration

	ticker *time.Ticker
	mu     sync.Mutex
}

func NewTimer(interval time.Duration) *Timer {
	return &Timer{
		Interval: interval,
		ticker:   time.NewTicker(interval),
	}
}

func (t *Timer) C() <-chan time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ticker == nil {
		return nil
	}
	return t.ticker.C
}

func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.ticker != nil
}

// Stop is a no-op on a stopped timer.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
}
