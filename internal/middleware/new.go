package middleware

import (
	"catalog-api/pkg/log"
)

// ReadinessChecker reports whether the store behind the routes can serve requests.
type ReadinessChecker interface {
	Ready() bool
}

// Config is the dependency bag passed to New().
type Config struct {
	AuthToken      string
	RequestsPerMin int
	Burst          int
	Readiness      ReadinessChecker
}

type Middleware struct {
	l         log.Logger
	authToken string
	limiter   *rateLimiter
	readiness ReadinessChecker
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:         l,
		authToken: cfg.AuthToken,
		readiness: cfg.Readiness,
	}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.Burst)
	}
	return mw
}
