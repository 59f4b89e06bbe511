package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/middleware"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/conf"
)

// RateLimit 令牌桶限流，limiter 为 nil 时不限流
func RateLimit(limiter *rate.Limiter) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			if limiter != nil && !limiter.Allow() {
				return nil, errors.New(429, "TOO_MANY_REQUESTS", "请求过于频繁，请稍后再试")
			}
			return handler(ctx, req)
		}
	}
}

func newLimiter(c *conf.Limit) *rate.Limiter {
	if c == nil || c.Qps <= 0 {
		return nil
	}
	burst := c.Burst
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(c.Qps), burst)
}
