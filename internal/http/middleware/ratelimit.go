package middleware

import (
	"context"
	"sync"
	"time"
)

type clientInfo struct {
	last  time.Time
	count int
}

// MemoryLimiter is a per-process fixed-window limiter for the local server
// when Redis is not configured.
type MemoryLimiter struct {
	mu          sync.Mutex
	clients     map[string]*clientInfo
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

func NewMemoryLimiter(maxRequests int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		clients:     make(map[string]*clientInfo),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, ident string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	ci, ok := l.clients[ident]
	if !ok || now.Sub(ci.last) > l.window {
		l.clients[ident] = &clientInfo{last: now, count: 1}
		return true, nil
	}

	ci.count++
	return ci.count <= l.maxRequests, nil
}
