package middleware

import (
	"log/slog"
	"sync"
	"time"

	"jobboard/config"
	domainerrors "jobboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// staleAfter controls how long an idle client's bucket survives before the
// sweeper drops it.
const staleAfter = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles login attempts per client IP with a token
// bucket: burst equals the configured attempt count and tokens refill over
// the configured window, so a blocked client regains access without any
// reset endpoint.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	logger   *slog.Logger
	stopOnce sync.Once
	stop     chan struct{}
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	attempts := cfg.RateLimit.LoginAttempts
	window := cfg.RateLimit.LoginWindow

	m := &RateLimitMiddleware{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(float64(attempts) / window.Seconds()),
		burst:   attempts,
		logger:  logger,
		stop:    make(chan struct{}),
	}
	go m.sweep()

	return m
}

// Limit rejects the request with 429 once the caller's bucket is empty.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.allow(c.RealIP()) {
			m.logger.Warn("Login rate limit hit", slog.String("ip", c.RealIP()))

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, ok := m.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.clients[ip] = client
	}
	client.lastSeen = time.Now()

	return client.limiter.Allow()
}

// Close stops the background sweeper.
func (m *RateLimitMiddleware) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// sweep periodically drops buckets for clients that went quiet, keeping the
// map bounded by the set of recently active IPs.
func (m *RateLimitMiddleware) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-staleAfter)
			m.mu.Lock()
			for ip, client := range m.clients {
				if client.lastSeen.Before(cutoff) {
					delete(m.clients, ip)
				}
			}
			m.mu.Unlock()
		}
	}
}
