// Package httpserver runs the kbooks HTTP API with graceful shutdown,
// configurable timeouts and liveness/readiness handlers.
//
// Run blocks until its context is cancelled or the process receives SIGINT or
// SIGTERM, then shuts the server down within the configured deadline. Listen
// errors are wrapped with ErrStart and shutdown errors with ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	r.Get("/live", httpserver.LivenessHandler())
//	r.Get("/ready", httpserver.ReadinessHandler(log,
//		httpserver.Check{Name: "users", Fn: pingUsers},
//	))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
