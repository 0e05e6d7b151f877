package httpserver

import (
	"context"
	"log/slog"
	"time"
)

// Option configures the HTTP server.
type Option func(*config)

// Hook runs at a server lifecycle event with the server logger.
type Hook func(ctx context.Context, log *slog.Logger)

// Timeouts bounds the phases of a connection. Zero fields keep the server
// defaults.
type Timeouts struct {
	Read     time.Duration
	Write    time.Duration
	Idle     time.Duration
	Shutdown time.Duration
}

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty addr")
	}
	return func(c *config) { c.addr = addr }
}

// WithTimeouts overrides the non-zero timeouts of t. Negative values panic.
func WithTimeouts(t Timeouts) Option {
	if t.Read < 0 || t.Write < 0 || t.Idle < 0 || t.Shutdown < 0 {
		panic("httpserver: negative timeout")
	}
	return func(c *config) {
		if t.Read > 0 {
			c.timeouts.Read = t.Read
		}
		if t.Write > 0 {
			c.timeouts.Write = t.Write
		}
		if t.Idle > 0 {
			c.timeouts.Idle = t.Idle
		}
		if t.Shutdown > 0 {
			c.timeouts.Shutdown = t.Shutdown
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStartHook runs h once the listener is bound, before serving.
func WithStartHook(h Hook) Option {
	if h == nil {
		panic("httpserver: nil start hook")
	}
	return func(c *config) { c.startHooks = append(c.startHooks, h) }
}

// WithStopHook runs h after in-flight requests have drained.
func WithStopHook(h Hook) Option {
	if h == nil {
		panic("httpserver: nil stop hook")
	}
	return func(c *config) { c.stopHooks = append(c.stopHooks, h) }
}
