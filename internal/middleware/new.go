package middleware

import (
	"line-task-tracker/pkg/log"
)

// Config holds the secrets and limits the middlewares enforce.
type Config struct {
	ChannelSecret   string // LINE channel secret for X-Line-Signature
	CronKey         string // shared key for the cron and export endpoints
	RateLimitPerMin int    // per client IP; 0 disables limiting
}

type Middleware struct {
	l           log.Logger
	cfg         Config
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:           l,
		cfg:         cfg,
		rateLimiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
