// Package ratelimit bounds request rates per source address within a fixed
// time window. The Limiter interface keeps the backing store swappable: the
// in-memory store below covers single-instance deployments, a shared counter
// store can replace it for multi-instance ones without touching callers.
package ratelimit

import (
	"sync"
	"time"
)

// Result is the outcome of a single check-and-increment.
type Result struct {
	Allowed bool
	// RetryAfter is the time remaining until the window resets.
	// Only meaningful when Allowed is false.
	RetryAfter time.Duration
}

// Limiter is a check-and-increment rate limiter keyed by an arbitrary string.
type Limiter interface {
	Allow(key string, now time.Time) Result
}

type entry struct {
	count   int
	resetAt time.Time
}

// MemoryStore is a process-local fixed-window Limiter.
//
// Entries are never evicted; they accumulate for the life of the process.
// Acceptable for a low-traffic single-instance deployment.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry

	window time.Duration
	max    int
}

// NewMemoryStore creates a limiter allowing max requests per key per window.
func NewMemoryStore(window time.Duration, max int) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*entry),
		window:  window,
		max:     max,
	}
}

// Allow records a request for key at time now and reports whether it is
// within the window budget. The first request of a window (including the
// first ever for a key) resets the counter to 1.
func (s *MemoryStore) Allow(key string, now time.Time) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || !now.Before(e.resetAt) {
		s.entries[key] = &entry{count: 1, resetAt: now.Add(s.window)}
		return Result{Allowed: true}
	}

	if e.count >= s.max {
		return Result{Allowed: false, RetryAfter: e.resetAt.Sub(now)}
	}

	e.count++
	return Result{Allowed: true}
}

// RetryAfterSeconds converts a retry delay to the whole-second value
// advertised in a Retry-After header, rounding up so the client never
// retries before the window actually resets.
func RetryAfterSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}
