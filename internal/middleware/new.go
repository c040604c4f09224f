package middleware

import (
	"farmpower-chat/config"
	"farmpower-chat/pkg/log"
)

type Middleware struct {
	l         log.Logger
	rateLimit config.RateLimitConfig
	limiter   *rateLimiter
}

func New(l log.Logger, rateLimit config.RateLimitConfig) Middleware {
	mw := Middleware{
		l:         l,
		rateLimit: rateLimit,
	}
	if rateLimit.Enabled {
		mw.limiter = newRateLimiter(rateLimit)
	}
	return mw
}
