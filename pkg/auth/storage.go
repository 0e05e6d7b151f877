package auth

import (
	"context"

	"github.com/google/uuid"
)

// UserStore is the persistence contract for accounts.
//
// Insert must be a single conditional write: when the email or login is
// already taken it returns ErrUserAlreadyExists and stores nothing.
// Lookups return ErrUserNotFound when no row matches.
type UserStore interface {
	FindByEmailOrLogin(ctx context.Context, email, login string) ([]User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, u NewUser) (User, error)
	UpdatePassword(ctx context.Context, login, passwordHash string) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByLogin(ctx context.Context, login string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
