package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/kbooks/pkg/logger"
	"github.com/dmitrymomot/kbooks/pkg/requestid"
)

// ErrorBody is the JSON shape of every error response. It matches the
// {success, error} result bodies of the API.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError resolves the status and the client message for err. Server
// errors only ever expose the status text.
func classifyError(err error, statuses StatusMap) ErrorInfo {
	code := StatusCode(err, statuses)
	info := ErrorInfo{
		StatusCode: code,
		Message:    http.StatusText(code),
		LogLevel:   determineLogLevel(code),
	}

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		info.Message = httpErr.Key
	case isClientError(code):
		info.Message = err.Error()
	}
	return info
}

func writeErrorBody(w http.ResponseWriter, code int, msg string) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(ErrorBody{Error: msg})
}

// NewErrorHandler creates the API error handler. Statuses are resolved with
// StatusCode against statuses; client errors are logged at warn level and
// server errors at error level, both tagged with the request id.
// Configure this once in main.go and pass it to every route.
func NewErrorHandler(log *slog.Logger, statuses StatusMap) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err, statuses)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			logger.Component("error_handler"),
		)

		if werr := writeErrorBody(ctx.ResponseWriter(), info.StatusCode, info.Message); werr != nil {
			log.ErrorContext(r.Context(), "failed to write error response",
				logger.Error(werr),
				logger.Component("error_handler"),
			)
		}
	}
}
