package github

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/gitpulse-cli/internal/core/domain"
	"github.com/custodia-labs/gitpulse-cli/internal/logger"
)

const (
	// authenticatedQuota is the REST quota for authenticated users
	// (5000 requests per hour).
	authenticatedQuota = 5000

	// proactiveRate throttles outbound requests to ~1.2/sec, staying
	// under the hourly quota whilst keeping throughput usable.
	proactiveRate = 1.2

	// warnRemainingThreshold triggers an advisory warning when the
	// remaining quota drops below it.
	warnRemainingThreshold = 100

	// headerRateLimit is the quota limit header.
	headerRateLimit = "X-RateLimit-Limit"

	// headerRateRemaining is the remaining requests header.
	headerRateRemaining = "X-RateLimit-Remaining"

	// headerRateReset is the quota reset header (Unix seconds).
	headerRateReset = "X-RateLimit-Reset"

	// headerRetryAfter is the secondary-limit retry header (seconds).
	headerRetryAfter = "Retry-After"
)

// RateLimiter defends the API quota with two strategies: a proactive
// token bucket that spaces out requests, and reactive tracking of the
// quota headers GitHub returns on every response. When the tracked
// remaining quota runs out, Wait blocks until the advertised reset.
type RateLimiter struct {
	mu        sync.Mutex
	remaining int
	limit     int
	resetAt   time.Time
	bucket    *rate.Limiter
}

// NewRateLimiter creates a rate limiter assuming a full quota.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		remaining: authenticatedQuota,
		limit:     authenticatedQuota,
		bucket:    rate.NewLimiter(rate.Limit(proactiveRate), 1),
	}
}

// Wait blocks until it is safe to issue a request, or until ctx is
// cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	remaining := r.remaining
	resetAt := r.resetAt
	r.mu.Unlock()

	if remaining == 0 && time.Now().Before(resetAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(resetAt)):
		}
	}

	return nil
}

// UpdateFromResponse records the quota headers from an API response.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if v := resp.Header.Get(headerRateRemaining); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			r.remaining = n
		}
	}
	if v := resp.Header.Get(headerRateLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			r.limit = n
		}
	}
	if v := resp.Header.Get(headerRateReset); v != "" {
		if secs, err := strconv.ParseInt(v, 10, 64); err == nil {
			r.resetAt = time.Unix(secs, 0)
		}
	}
}

// Remaining returns the last observed remaining quota.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

// Limit returns the last observed quota limit.
func (r *RateLimiter) Limit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limit
}

// ResetTime returns the last observed quota reset instant.
func (r *RateLimiter) ResetTime() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetAt
}

// CheckRateLimit fetches a fresh snapshot of the core API quota.
// The check is advisory: callers may ignore failures, and a low
// remaining quota only produces a warning, never an abort.
func (s *Service) CheckRateLimit(ctx context.Context) (*domain.RateLimitInfo, error) {
	core, err := s.client.CoreRateLimit(ctx)
	if err != nil {
		return nil, Classify(err, "check rate limit")
	}

	info := &domain.RateLimitInfo{
		Limit:     core.Limit,
		Remaining: core.Remaining,
		ResetAt:   core.Reset.Time,
	}

	if info.Remaining < warnRemainingThreshold {
		logger.Warn("API quota low: %d of %d requests remaining, resets at %s",
			info.Remaining, info.Limit, info.ResetAt.Format(time.RFC3339))
	}

	return info, nil
}

// checkRateLimitAdvisory runs CheckRateLimit and swallows any
// failure. Quota checking is advisory, not required for correctness.
func (s *Service) checkRateLimitAdvisory(ctx context.Context) {
	if _, err := s.CheckRateLimit(ctx); err != nil {
		logger.Warn("rate limit check failed, continuing: %v", err)
	}
}
