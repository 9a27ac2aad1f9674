package ratelimit

import (
	"context"
	"fmt"
	"time"

	"insights-server/internal/clients/redis"
	"insights-server/internal/observability"
)

// Analytics queries are expensive; the per-tenant limit keeps a single
// dashboard from saturating the database with aggregate scans.
const (
	requestsPerWindow = 120
	windowDuration    = time.Minute
)

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service rate limits analytics requests per tenant using a Redis
// sliding window. When Redis is unavailable the service fails open:
// throttling is load protection, not an entitlement boundary.
type Service struct {
	redis  *redis.Client
	logger *observability.Logger
}

func NewService(redis *redis.Client, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		logger: logger,
	}
}

// Check records one request for the tenant and reports whether it is
// within the window limit.
func (s *Service) Check(ctx context.Context, tenantKey string) (Result, error) {
	if s.redis == nil || !s.redis.IsEnabled() {
		return Result{Allowed: true, Limit: requestsPerWindow, Remaining: requestsPerWindow}, nil
	}

	// Sliding window over a sorted set: members are request
	// timestamps in milliseconds, scored by the same value.
	key := fmt.Sprintf("rl:tenant:%s", tenantKey)
	now := time.Now()
	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-windowDuration).UnixMilli()

	err := s.redis.GetClient().ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStartMs)).Err()
	if err != nil {
		return Result{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := s.redis.ZCard(ctx, key)
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= requestsPerWindow {
		oldest, err := s.redis.GetClient().ZRange(ctx, key, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return Result{
				Allowed:      false,
				Limit:        requestsPerWindow,
				Remaining:    0,
				ResetAt:      now.Add(windowDuration),
				RetryAfterMs: int(windowDuration.Milliseconds()),
			}, nil
		}

		var oldestTs int64
		fmt.Sscanf(oldest[0], "%d", &oldestTs)
		retryAfter := time.UnixMilli(oldestTs).Add(windowDuration).Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}

		return Result{
			Allowed:      false,
			Limit:        requestsPerWindow,
			Remaining:    0,
			ResetAt:      time.UnixMilli(oldestTs).Add(windowDuration),
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	err = s.redis.ZAdd(ctx, key, redis.Z{
		Score:  float64(nowMs),
		Member: fmt.Sprintf("%d", nowMs),
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to add request: %w", err)
	}

	if err := s.redis.Expire(ctx, key, 2*windowDuration); err != nil {
		s.logger.Warn(ctx, "failed to set expiration on rate limit key", err)
	}

	return Result{
		Allowed:   true,
		Limit:     requestsPerWindow,
		Remaining: requestsPerWindow - int(count) - 1,
		ResetAt:   now.Add(windowDuration),
	}, nil
}
