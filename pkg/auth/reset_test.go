package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kbooks/pkg/auth"
	"github.com/dmitrymomot/kbooks/pkg/email"
)

func TestPasswordReset_Request(t *testing.T) {
	t.Parallel()

	t.Run("sends link", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mailer := &mockMailer{}
		store.On("EmailExists", mock.Anything, "bob@example.com").Return(true, nil)

		var sent email.SendEmailParams
		mailer.On("SendEmail", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(1).(email.SendEmailParams) }).
			Return(nil)

		svc := auth.NewPasswordReset(store, testSigner(t), mailer, testOptions()...)
		res, err := svc.Request(context.Background(), " BOB@example.com")
		require.NoError(t, err)
		assert.True(t, res.Success)

		assert.Equal(t, "bob@example.com", sent.SendTo)
		assert.Equal(t, auth.SubjectPasswordReset, sent.Subject)
		link := resetLink(t, linkFromBody(t, sent.BodyHTML))
		assert.Equal(t, "bob@example.com", link.Email)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mailer := &mockMailer{}
		store.On("EmailExists", mock.Anything, "ghost@example.com").Return(false, nil)

		svc := auth.NewPasswordReset(store, testSigner(t), mailer, testOptions()...)
		res, err := svc.Request(context.Background(), "ghost@example.com")
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, auth.MsgEmailNotFound, res.Message())
		mailer.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		svc := auth.NewPasswordReset(&mockStore{}, testSigner(t), &mockMailer{}, testOptions()...)
		_, err := svc.Request(context.Background(), "not an address")
		assert.ErrorIs(t, err, auth.ErrInvalidInput)
	})

	t.Run("storage failure", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		store.On("EmailExists", mock.Anything, mock.Anything).Return(false, errors.New("timeout"))

		svc := auth.NewPasswordReset(store, testSigner(t), &mockMailer{}, testOptions()...)
		_, err := svc.Request(context.Background(), "bob@example.com")
		assert.ErrorIs(t, err, auth.ErrStorageFailure)
	})
}

func TestPasswordReset_Check(t *testing.T) {
	t.Parallel()

	const addr = "bob@example.com"

	newLink := func(t *testing.T, expires time.Time) auth.ResetLink {
		t.Helper()
		svc := auth.NewPasswordReset(&mockStore{}, testSigner(t), &mockMailer{}, testOptions()...)
		link, err := svc.Link(addr, expires)
		require.NoError(t, err)
		return resetLink(t, link)
	}

	tests := []struct {
		name    string
		expires time.Time
		mutate  func(l *auth.ResetLink)
		exists  bool
		want    string
	}{
		{name: "valid", expires: testNow.Add(time.Hour), exists: true},
		{name: "tampered", expires: testNow.Add(time.Hour), mutate: func(l *auth.ResetLink) { l.Token = tamper(l.Token) }, want: auth.MsgIncorrectLink},
		{name: "malformed", expires: testNow.Add(time.Hour), mutate: func(l *auth.ResetLink) { l.Token = "%24" }, want: auth.MsgInvalidHashLink},
		{name: "other email", expires: testNow.Add(time.Hour), mutate: func(l *auth.ResetLink) { l.Email = "eve%40example.com" }, want: auth.MsgIncorrectLink},
		{name: "invalid utf8", expires: testNow.Add(time.Hour), mutate: func(l *auth.ResetLink) { l.Email = "%FF" }, want: auth.MsgIncorrectLink},
		{name: "padded expiry", expires: testNow.Add(time.Hour), mutate: func(l *auth.ResetLink) { l.Expires = "+00" + l.Expires }, want: auth.MsgIncorrectLink},
		{name: "expired", expires: testNow.Add(-time.Minute), want: auth.MsgLinkExpired},
		{name: "account removed", expires: testNow.Add(time.Hour), exists: false, want: auth.MsgEmailNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &mockStore{}
			store.On("EmailExists", mock.Anything, addr).Return(tt.exists, nil)

			link := newLink(t, tt.expires)
			if tt.mutate != nil {
				tt.mutate(&link)
			}

			svc := auth.NewPasswordReset(store, testSigner(t), &mockMailer{}, testOptions()...)
			res, err := svc.Check(context.Background(), link)
			require.NoError(t, err)
			if tt.want == "" {
				assert.True(t, res.Success)
				return
			}
			assert.False(t, res.Success)
			assert.Equal(t, tt.want, res.Message())
		})
	}
}

func TestPasswordReset_Complete(t *testing.T) {
	t.Parallel()

	const addr = "bob@example.com"
	user := auth.User{ID: uuid.New(), Login: "bob", Email: addr}

	newLink := func(t *testing.T) auth.ResetLink {
		t.Helper()
		svc := auth.NewPasswordReset(&mockStore{}, testSigner(t), &mockMailer{}, testOptions()...)
		link, err := svc.Link(addr, testNow.Add(time.Hour))
		require.NoError(t, err)
		return resetLink(t, link)
	}

	t.Run("updates password", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		store.On("EmailExists", mock.Anything, addr).Return(true, nil)
		store.On("GetByEmail", mock.Anything, addr).Return(user, nil)

		var stored string
		store.On("UpdatePassword", mock.Anything, "bob", mock.Anything).
			Run(func(args mock.Arguments) { stored = args.String(2) }).
			Return(nil)

		svc := auth.NewPasswordReset(store, testSigner(t), &mockMailer{}, testOptions()...)
		res, err := svc.Complete(context.Background(), newLink(t), "new password")
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.True(t, fastHasher().Verify("new password", stored))
		store.AssertExpectations(t)
	})

	t.Run("rejects short password before checking link", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		svc := auth.NewPasswordReset(store, testSigner(t), &mockMailer{}, testOptions()...)
		_, err := svc.Complete(context.Background(), newLink(t), "123")
		assert.ErrorIs(t, err, auth.ErrInvalidInput)
		store.AssertNotCalled(t, "EmailExists", mock.Anything, mock.Anything)
	})

	t.Run("tampered link does not update", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		link := newLink(t)
		link.Token = tamper(link.Token)

		svc := auth.NewPasswordReset(store, testSigner(t), &mockMailer{}, testOptions()...)
		res, err := svc.Complete(context.Background(), link, "new password")
		require.NoError(t, err)
		assert.Equal(t, auth.MsgIncorrectLink, res.Message())
		store.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("update failure", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		store.On("EmailExists", mock.Anything, addr).Return(true, nil)
		store.On("GetByEmail", mock.Anything, addr).Return(user, nil)
		store.On("UpdatePassword", mock.Anything, "bob", mock.Anything).Return(errors.New("read only"))

		svc := auth.NewPasswordReset(store, testSigner(t), &mockMailer{}, testOptions()...)
		_, err := svc.Complete(context.Background(), newLink(t), "new password")
		assert.ErrorIs(t, err, auth.ErrStorageFailure)
	})
}
