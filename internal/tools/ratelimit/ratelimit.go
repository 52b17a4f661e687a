package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"bitbucket.org/crgw/hotel-avail/internal/tools/httperror"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	TooManyRequestsMessage = "Too many requests."
	DefaultIdleTimeout     = 10 * time.Minute
)

type Config struct {
	RequestsPerSecond float64
	BurstSize         int
	// IdleTimeout is how long an unseen client keeps its bucket
	IdleTimeout time.Duration
}

type Option func(l *ClientLimiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *ClientLimiter) {
		l.now = now
	}
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter keeps one token bucket per client ip. Buckets idle for longer
// than IdleTimeout are swept on access.
type ClientLimiter struct {
	clients   map[string]*client
	mu        sync.Mutex
	config    Config
	now       func() time.Time
	lastSweep time.Time
}

func NewClientLimiter(config Config, options ...Option) *ClientLimiter {
	if config.BurstSize < 1 {
		config.BurstSize = 1
	}
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = DefaultIdleTimeout
	}

	l := &ClientLimiter{
		clients: make(map[string]*client),
		config:  config,
		now:     time.Now,
	}

	for _, option := range options {
		option(l)
	}

	l.lastSweep = l.now()

	return l
}

func (l *ClientLimiter) GetLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	c, exists := l.clients[key]
	if !exists {
		c = &client{
			limiter: rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.BurstSize),
		}
		l.clients[key] = c
	}
	c.lastSeen = now

	return c.limiter
}

// sweep runs at most once per IdleTimeout. Callers hold mu.
func (l *ClientLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.config.IdleTimeout {
		return
	}
	l.lastSweep = now

	for key, c := range l.clients {
		if now.Sub(c.lastSeen) >= l.config.IdleTimeout {
			delete(l.clients, key)
		}
	}
}

// Size is the number of tracked clients.
func (l *ClientLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.clients)
}

func (l *ClientLimiter) Allow(key string) bool {
	return l.GetLimiter(key).AllowN(l.now(), 1)
}

// Middleware rejects requests above the client's rate with 429.
func (l *ClientLimiter) Middleware(c *gin.Context) {
	if !l.Allow(c.ClientIP()) {
		httperror.HandleError(c, http.StatusTooManyRequests, TooManyRequestsMessage, nil)
		return
	}

	c.Next()
}
