package ratelimit

import (
	"context"
	"errors"
	"time"
)

// FixedWindow allows limit requests per key in consecutive windows.
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
	now    func() time.Time
}

// FixedWindowOption configures a FixedWindow.
type FixedWindowOption func(*FixedWindow)

// WithClock replaces time.Now when computing ResetAt.
func WithClock(now func() time.Time) FixedWindowOption {
	return func(fw *FixedWindow) {
		if now != nil {
			fw.now = now
		}
	}
}

// NewFixedWindow creates a fixed window limiter backed by store.
func NewFixedWindow(store Store, limit int, window time.Duration, opts ...FixedWindowOption) (*FixedWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidInterval
	}

	fw := &FixedWindow{store: store, limit: limit, window: window, now: time.Now}
	for _, opt := range opts {
		opt(fw)
	}
	return fw, nil
}

// NewFromConfig builds a limiter from cfg.
func NewFromConfig(store Store, cfg Config, opts ...FixedWindowOption) (*FixedWindow, error) {
	return NewFixedWindow(store, cfg.Requests, cfg.Window, opts...)
}

// Allow counts the request and reports whether it fits in the window.
func (fw *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	count, ttl, err := fw.store.Increment(ctx, key, fw.window)
	if err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}
	if ttl <= 0 {
		ttl = fw.window
	}

	return &Result{
		Allowed:   count <= int64(fw.limit),
		Limit:     fw.limit,
		Remaining: max(fw.limit-int(count), 0),
		ResetAt:   fw.now().Add(ttl),
	}, nil
}

// Reset forgets the counter for key.
func (fw *FixedWindow) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	if err := fw.store.Delete(ctx, key); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}
