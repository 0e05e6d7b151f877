package logger

import (
	"log/slog"
	"strconv"
)

// Error records err under "error". Nil yields an empty attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// UserID records id under "user_id". Nil yields an empty attribute.
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Email records the address a message or link was issued for.
func Email(addr string) slog.Attr {
	return slog.String("email", addr)
}

// Flow names the confirmation flow, e.g. "registration" or "password_reset".
func Flow(name string) slog.Attr {
	return slog.String("flow", name)
}

// Outcome records the result message of a confirmation step.
func Outcome(msg string) slog.Attr {
	return slog.String("outcome", msg)
}
