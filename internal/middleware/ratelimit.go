package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"coliving/internal/httputil"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type principalLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per authenticated caller
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[uuid.UUID]*principalLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
	logger    *slog.Logger
}

// NewRateLimiter allows perSecond sustained requests per caller with bursts up to burst
func NewRateLimiter(perSecond float64, burst int, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[uuid.UUID]*principalLimiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		now:      time.Now,
		logger:   logger,
	}
}

// Allow reports whether the caller may proceed now
func (rl *RateLimiter) Allow(id uuid.UUID) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	pl, ok := rl.limiters[id]
	if !ok {
		pl = &principalLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[id] = pl
	}
	pl.lastSeen = now
	return pl.limiter.AllowN(now, 1)
}

// sweep drops buckets idle long enough to have refilled; caller holds mu
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < limiterIdleTTL {
		return
	}
	rl.lastSweep = now
	for id, pl := range rl.limiters {
		if now.Sub(pl.lastSeen) > limiterIdleTTL {
			delete(rl.limiters, id)
		}
	}
}

// Middleware rejects over-limit callers with 429. Must run after Auth.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httputil.GetPrincipal(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.Allow(principal.ID) {
			rl.logger.Warn("rate limit exceeded", "principal_id", principal.ID, "path", r.URL.Path)
			w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
			httputil.RespondError(w, http.StatusTooManyRequests, "too many match requests; slow down")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) retryAfterSeconds() int {
	if rl.limit <= 0 {
		return 60
	}
	secs := int(1 / float64(rl.limit))
	if secs < 1 {
		secs = 1
	}
	return secs
}
