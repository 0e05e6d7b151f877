package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/kbooks/pkg/config"
	"github.com/dmitrymomot/kbooks/pkg/httpserver"
	"github.com/dmitrymomot/kbooks/pkg/ratelimit"
	"github.com/dmitrymomot/kbooks/pkg/redis"
)

// rateLimiter is the middleware for the unauthenticated account routes.
type rateLimiter struct {
	middleware func(http.Handler) http.Handler
	checks     []httpserver.Check
	close      func()
}

func newRateLimiter(ctx context.Context, log *slog.Logger) (*rateLimiter, error) {
	var cfg ratelimit.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	rl := &rateLimiter{}
	var store ratelimit.Store
	switch cfg.Store {
	case ratelimit.StoreRedis:
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, err
		}
		store = ratelimit.NewRedisStore(client, cfg.KeyPrefix)
		rl.checks = []httpserver.Check{{Name: "redis", Fn: redis.Healthcheck(client)}}
		rl.close = func() { _ = client.Close() }
	default:
		mem := ratelimit.NewMemoryStore()
		store = mem
		rl.close = func() { _ = mem.Close() }
	}

	limiter, err := ratelimit.NewFromConfig(store, cfg)
	if err != nil {
		rl.close()
		return nil, err
	}
	rl.middleware = ratelimit.Middleware(limiter,
		ratelimit.Composite(ratelimit.Static("account"), ratelimit.ByIP),
		ratelimit.WithLogger(log),
	)
	return rl, nil
}
