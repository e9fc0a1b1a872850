package hal

import (
	"sync"
	"time"
)

type hostTime struct {
	mu    sync.Mutex
	now   func() time.Time
	start time.Time
	last  float64
}

func newHostTimeWithClock(now func() time.Time) *hostTime {
	if now == nil {
		now = time.Now
	}
	return &hostTime{now: now, start: now()}
}

// Seconds never goes backwards, even if the clock does.
func (t *hostTime) Seconds() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.now().Sub(t.start).Seconds()
	if s < t.last {
		return t.last
	}
	t.last = s
	return s
}
