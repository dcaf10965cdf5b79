package middleware

import (
	"holistic-daily/pkg/jwt"
	"holistic-daily/pkg/log"
)

type Middleware struct {
	l          log.Logger
	jwtManager *jwt.Manager
	limiter    *rateLimiter
}

// New builds the middleware set. requestsPerMin bounds RateLimit per client IP.
func New(l log.Logger, jwtManager *jwt.Manager, requestsPerMin int) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    newRateLimiter(requestsPerMin),
	}
}
