// Package ratelimiter bounds how often a keyed operation may run inside a
// fixed window. The auth endpoints use it per client IP, backed by Redis
// when available and by process memory otherwise.
package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Limiter reports whether the operation identified by key may run now.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Memory is an in-process fixed-window limiter.
type Memory struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	windows map[string]*fixedWindow
}

type fixedWindow struct {
	count int
	start time.Time
}

// NewMemory creates a Memory limiter allowing limit calls per window per
// key.
func NewMemory(limit int, window time.Duration) *Memory {
	return &Memory{
		limit:   limit,
		window:  window,
		windows: make(map[string]*fixedWindow),
	}
}

// Allow counts a call against the key's current window, resetting the
// window when it has elapsed.
func (m *Memory) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	w, ok := m.windows[key]
	if !ok || now.Sub(w.start) >= m.window {
		w = &fixedWindow{start: now}
		m.windows[key] = w
	}

	w.count++
	return w.count <= m.limit, nil
}
