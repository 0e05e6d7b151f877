package auth

import (
	"context"
	"errors"

	"github.com/dmitrymomot/kbooks/pkg/logger"
	"github.com/dmitrymomot/kbooks/pkg/sanitizer"
)

// Authenticator checks login credentials.
type Authenticator struct {
	store UserStore
	*options
}

func NewAuthenticator(store UserStore, opts ...Option) *Authenticator {
	return &Authenticator{store: store, options: newOptions(opts)}
}

// Login returns the account matching login and password. Unknown logins and
// wrong passwords both yield ErrUnauthorized.
func (a *Authenticator) Login(ctx context.Context, login, password string) (User, error) {
	login = sanitizer.NormalizeText(login)
	if login == "" || password == "" {
		return User{}, ErrUnauthorized
	}

	u, err := a.store.GetByLogin(ctx, login)
	switch {
	case errors.Is(err, ErrUserNotFound):
		a.observer.ObserveOutcome(FlowLogin, "login", MsgBadCredentials)
		return User{}, ErrUnauthorized
	case err != nil:
		a.observer.ObserveOutcome(FlowLogin, "login", "error")
		a.logger.ErrorContext(ctx, "login lookup failed", logger.Flow(FlowLogin), logger.Error(err))
		return User{}, errors.Join(ErrStorageFailure, err)
	}

	if !a.hasher.Verify(password, u.Password) {
		a.observer.ObserveOutcome(FlowLogin, "login", MsgBadCredentials)
		return User{}, ErrUnauthorized
	}

	a.observer.ObserveOutcome(FlowLogin, "login", "success")
	a.logger.InfoContext(ctx, "user logged in", logger.Flow(FlowLogin), logger.UserID(u.ID.String()))
	return u, nil
}

// User loads an account by login for authenticated requests.
func (a *Authenticator) User(ctx context.Context, login string) (User, error) {
	u, err := a.store.GetByLogin(ctx, login)
	switch {
	case errors.Is(err, ErrUserNotFound):
		return User{}, ErrUnauthorized
	case err != nil:
		return User{}, errors.Join(ErrStorageFailure, err)
	}
	return u, nil
}
