// Package redis connects kbooks to Redis through go-redis.
//
// Redis is optional. When RATELIMIT_STORE=redis the rate limiter keeps its
// counters there so that several API instances share one budget per client.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	limiter := ratelimit.NewRedisStore(client, "kbooks:rl:")
//
// Healthcheck plugs the client into httpserver.HealthCheckHandler.
package redis
