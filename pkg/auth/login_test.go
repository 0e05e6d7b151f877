package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kbooks/pkg/auth"
)

func TestAuthenticator_Login(t *testing.T) {
	t.Parallel()

	hash, err := fastHasher().Hash("secret123")
	require.NoError(t, err)
	user := auth.User{ID: uuid.New(), Login: "carol", Email: "carol@example.com", Password: hash}

	tests := []struct {
		name     string
		login    string
		password string
		setup    func(s *mockStore)
		wantErr  error
	}{
		{
			name:     "ok",
			login:    "carol",
			password: "secret123",
			setup:    func(s *mockStore) { s.On("GetByLogin", mock.Anything, "carol").Return(user, nil) },
		},
		{
			name:     "wrong password",
			login:    "carol",
			password: "secret124",
			setup:    func(s *mockStore) { s.On("GetByLogin", mock.Anything, "carol").Return(user, nil) },
			wantErr:  auth.ErrUnauthorized,
		},
		{
			name:     "unknown login",
			login:    "dave",
			password: "secret123",
			setup:    func(s *mockStore) { s.On("GetByLogin", mock.Anything, "dave").Return(auth.User{}, auth.ErrUserNotFound) },
			wantErr:  auth.ErrUnauthorized,
		},
		{
			name:     "empty password",
			login:    "carol",
			password: "",
			setup:    func(*mockStore) {},
			wantErr:  auth.ErrUnauthorized,
		},
		{
			name:     "store failure",
			login:    "carol",
			password: "secret123",
			setup: func(s *mockStore) {
				s.On("GetByLogin", mock.Anything, "carol").Return(auth.User{}, errors.New("boom"))
			},
			wantErr: auth.ErrStorageFailure,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &mockStore{}
			tt.setup(store)
			obs := &recordingObserver{}

			a := auth.NewAuthenticator(store, testOptions(auth.WithObserver(obs))...)
			got, err := a.Login(context.Background(), tt.login, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
			assert.Equal(t, []string{"login/login/success"}, obs.outcomes)
		})
	}
}

func TestResultFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err   error
		msg   string
		isBiz bool
	}{
		{nil, "", true},
		{auth.ErrInvalidLink, auth.MsgInvalidHashLink, true},
		{errors.Join(auth.ErrIncorrectLink, errors.New("x")), auth.MsgIncorrectLink, true},
		{auth.ErrLinkExpired, auth.MsgLinkExpired, true},
		{auth.ErrStorageFailure, "", false},
		{auth.ErrInvalidInput, "", false},
	}
	for _, tt := range tests {
		res, ok := auth.ResultFromError(tt.err)
		assert.Equal(t, tt.isBiz, ok)
		assert.Equal(t, tt.msg, res.Message())
	}
}
