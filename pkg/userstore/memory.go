package userstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/kbooks/pkg/auth"
)

// Memory is a map backed store for development and tests.
type Memory struct {
	mu    sync.RWMutex
	users map[uuid.UUID]auth.User
	now   func() time.Time
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{users: make(map[uuid.UUID]auth.User), now: time.Now}
}

func (m *Memory) FindByEmailOrLogin(_ context.Context, email, login string) ([]auth.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []auth.User
	for _, u := range m.users {
		if u.Email == email || u.Login == login {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *Memory) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, auth.ErrUserNotFound):
		return false, nil
	}
	return false, err
}

func (m *Memory) Insert(_ context.Context, nu auth.NewUser) (auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == nu.Email || u.Login == nu.Login {
			return auth.User{}, auth.ErrUserAlreadyExists
		}
	}

	u := auth.User{
		ID:        uuid.New(),
		Login:     nu.Login,
		Email:     nu.Email,
		Password:  nu.Password,
		Language:  nu.Language,
		CreatedAt: m.now().UTC().Truncate(time.Second),
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *Memory) UpdatePassword(_ context.Context, login, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, u := range m.users {
		if u.Login == login {
			u.Password = hash
			m.users[id] = u
			return nil
		}
	}
	return auth.ErrUserNotFound
}

func (m *Memory) GetByID(_ context.Context, id uuid.UUID) (auth.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return auth.User{}, auth.ErrUserNotFound
	}
	return u, nil
}

func (m *Memory) GetByLogin(_ context.Context, login string) (auth.User, error) {
	return m.find(func(u auth.User) bool { return u.Login == login })
}

func (m *Memory) GetByEmail(_ context.Context, email string) (auth.User, error) {
	return m.find(func(u auth.User) bool { return u.Email == email })
}

func (m *Memory) find(match func(auth.User) bool) (auth.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if match(u) {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrUserNotFound
}
