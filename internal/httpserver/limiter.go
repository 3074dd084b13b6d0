package httpserver

import (
	"sync"
	"time"
)

// loginLimiter throttles sign-in attempts per client address with a
// sliding window. State is in-process; each instance limits on its own.
type loginLimiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	hits   map[string][]time.Time
	now    func() time.Time
}

func newLoginLimiter(max int, window time.Duration) *loginLimiter {
	return &loginLimiter{
		max:    max,
		window: window,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

// allow records an attempt for addr and reports whether it is within the
// window's budget.
func (l *loginLimiter) allow(addr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.hits[addr][:0]
	for _, t := range l.hits[addr] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= l.max {
		l.hits[addr] = kept
		return false
	}
	l.hits[addr] = append(kept, now)
	return true
}
