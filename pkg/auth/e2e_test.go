package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kbooks/pkg/auth"
	"github.com/dmitrymomot/kbooks/pkg/email"
	"github.com/dmitrymomot/kbooks/pkg/logger"
	"github.com/dmitrymomot/kbooks/pkg/migrations"
	"github.com/dmitrymomot/kbooks/pkg/sqlite"
	"github.com/dmitrymomot/kbooks/pkg/userstore"
)

func sqliteStore(t *testing.T) *userstore.SQLite {
	t.Helper()

	ctx := context.Background()
	db, err := sqlite.Open(ctx, sqlite.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.Migrate(ctx, db, migrations.FS, migrations.SQLiteDir, sqlite.Config{}, logger.Discard()))
	return userstore.NewSQLite(db)
}

// capturingMailer records every message it is asked to send.
func capturingMailer() (*mockMailer, *[]email.SendEmailParams) {
	var sent []email.SendEmailParams
	m := &mockMailer{}
	m.On("SendEmail", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = append(sent, args.Get(1).(email.SendEmailParams)) }).
		Return(nil)
	return m, &sent
}

func TestEndToEnd_SQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := sqliteStore(t)
	signer := testSigner(t)
	mailer, sent := capturingMailer()

	now := testNow
	clock := auth.WithClock(func() time.Time { return now })
	reg := auth.NewRegistration(store, signer, mailer, testOptions(clock)...)
	reset := auth.NewPasswordReset(store, signer, mailer, testOptions(clock)...)
	authn := auth.NewAuthenticator(store, testOptions(clock)...)

	// Register with a username that needs escaping.
	res, err := reg.Request(ctx, auth.RegistrationRequest{Email: "eve@example.com", Username: "ève/ü 1", Password: "first-pass"})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Len(t, *sent, 1)

	link := registrationLink(t, linkFromBody(t, (*sent)[0].BodyHTML))
	res, err = reg.Confirm(ctx, link)
	require.NoError(t, err)
	require.True(t, res.Success, res.Message())

	u, err := authn.Login(ctx, "ève/ü 1", "first-pass")
	require.NoError(t, err)
	assert.Equal(t, "eve@example.com", u.Email)

	// Replaying the link now collides with the account it created.
	res, err = reg.Confirm(ctx, link)
	require.NoError(t, err)
	assert.Equal(t, auth.MsgEmailTaken, res.Message())

	// A second registration with the same login is refused up front.
	res, err = reg.Request(ctx, auth.RegistrationRequest{Email: "other@example.com", Username: "ève/ü 1", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, auth.MsgUsernameTaken, res.Message())

	// Reset the password.
	res, err = reset.Request(ctx, "eve@example.com")
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Len(t, *sent, 2)
	rl := resetLink(t, linkFromBody(t, (*sent)[1].BodyHTML))

	res, err = reset.Check(ctx, rl)
	require.NoError(t, err)
	assert.True(t, res.Success)

	res, err = reset.Complete(ctx, rl, "second-pass")
	require.NoError(t, err)
	require.True(t, res.Success)

	_, err = authn.Login(ctx, "ève/ü 1", "first-pass")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
	_, err = authn.Login(ctx, "ève/ü 1", "second-pass")
	assert.NoError(t, err)

	// Once expired, the reset link is refused.
	now = now.Add(auth.DefaultLinkTTL + time.Second)
	res, err = reset.Check(ctx, rl)
	require.NoError(t, err)
	assert.Equal(t, auth.MsgLinkExpired, res.Message())

	res, err = reset.Request(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Equal(t, auth.MsgEmailNotFound, res.Message())
}
