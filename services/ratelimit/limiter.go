package ratelimit

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Decision is the outcome of a single rate-limit check.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}

// Store is the counting backend behind submission throttling. Implementations
// must be safe for concurrent use.
type Store interface {
	CheckAndIncrement(key string) Decision
}

type window struct {
	count   int
	started time.Time
}

// Limiter is a fixed-window per-key counter held in process memory. Each key
// gets at most max hits per window; the window restarts once it has fully
// elapsed.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*window
	window  time.Duration
	max     int

	now func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

// New builds a Limiter allowing max hits per key within each window.
func New(windowDur time.Duration, max int) *Limiter {
	return &Limiter{
		entries: make(map[string]*window),
		window:  windowDur,
		max:     max,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
}

// CheckAndIncrement records a hit for key and reports whether it is within
// the limit. Denied hits are not counted, so a blocked client cannot extend
// its own window.
func (l *Limiter) CheckAndIncrement(key string) Decision {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.entries[key]
	if !ok || now.Sub(w.started) >= l.window {
		w = &window{started: now}
		l.entries[key] = w
	}

	resetIn := l.window - now.Sub(w.started)
	if w.count >= l.max {
		return Decision{Allowed: false, Remaining: 0, ResetIn: resetIn}
	}
	w.count++
	return Decision{Allowed: true, Remaining: l.max - w.count, ResetIn: resetIn}
}

// StartSweeper launches a background loop that drops expired windows so the
// key map does not grow without bound. Stop ends it.
func (l *Limiter) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				removed := l.sweep()
				if removed > 0 {
					zap.L().Debug("Swept expired rate-limit windows", zap.Int("removed", removed))
				}
			case <-l.stop:
				return
			}
		}
	}()
}

// Stop terminates the sweeper loop. Safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Limiter) sweep() int {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for key, w := range l.entries {
		if now.Sub(w.started) >= l.window {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}

// ClientKey derives the throttling key from an X-Forwarded-For header value:
// the first (client-most) entry, or "unknown" when the header is absent.
func ClientKey(forwardedFor string) string {
	if forwardedFor == "" {
		return "unknown"
	}
	first := forwardedFor
	if i := strings.Index(forwardedFor, ","); i >= 0 {
		first = forwardedFor[:i]
	}
	first = strings.TrimSpace(first)
	if first == "" {
		return "unknown"
	}
	return first
}
