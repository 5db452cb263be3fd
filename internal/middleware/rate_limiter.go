package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// WindowCounter is a shared fixed-window counter, satisfied by *kv.Store.
type WindowCounter interface {
	Allow(ctx context.Context, bucket string, limit int, window time.Duration) (bool, time.Duration, error)
}

// RateLimiter limits requests per client IP. The shared redis window is
// authoritative; the in-process limiter only answers while redis is failing.
type RateLimiter struct {
	counter WindowCounter
	limit   int
	window  time.Duration
	logger  *zap.Logger

	visitors map[string]*visitor
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

// visitor holds rate limiter for each visitor.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows limit requests per window for each IP. counter may be nil.
func NewRateLimiter(counter WindowCounter, limit, burst int, window time.Duration, logger *zap.Logger) *RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if burst <= 0 {
		burst = max(limit/4, 1)
	}
	return &RateLimiter{
		counter:  counter,
		limit:    limit,
		window:   window,
		logger:   logger,
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(float64(limit) / window.Seconds()),
		burst:    burst,
	}
}

// Run evicts idle local limiters until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.evict(3 * time.Minute)
		}
	}
}

func (rl *RateLimiter) evict(idle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, v := range rl.visitors {
		if time.Since(v.lastSeen) > idle {
			delete(rl.visitors, ip)
		}
	}
}

// getVisitor returns the rate limiter for the given IP.
func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// allow reports whether ip may proceed and, if not, when to retry.
func (rl *RateLimiter) allow(ctx context.Context, ip string) (bool, time.Duration) {
	if rl.counter != nil {
		ok, retry, err := rl.counter.Allow(ctx, "ip:"+ip, rl.limit, rl.window)
		if err == nil {
			return ok, retry
		}
		rl.logger.Warn("Rate limit store unavailable, using local limiter", zap.Error(err))
	}

	r := rl.getVisitor(ip).Reserve()
	if !r.OK() {
		return false, rl.window
	}
	if delay := r.Delay(); delay > 0 {
		r.Cancel()
		return false, delay
	}
	return true, 0
}

// Middleware returns a rate limiting middleware.
func (rl *RateLimiter) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rl.limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ok, retry := rl.allow(r.Context(), clientIP(r))
			if !ok {
				secs := int((retry + time.Second - 1) / time.Second)
				w.Header().Set("Retry-After", strconv.Itoa(max(secs, 1)))
				WriteError(w, r, http.StatusTooManyRequests, ErrorCodeRateLimitExceeded, ErrorMessageRateLimitExceeded)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
