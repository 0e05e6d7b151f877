// Package requestid tags each HTTP request with a correlation id.
//
// The middleware reuses a well-formed X-Request-ID header or generates a
// UUIDv4, stores the id in the request context and echoes it in the response.
// LoggerExtractor plugs the id into loggers built by pkg/logger.
package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/kbooks/pkg/logger"
)

type contextKey struct{}

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request id stored in ctx, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// LoggerExtractor adds "request_id" to log records made with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
