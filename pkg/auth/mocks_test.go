package auth_test

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/kbooks/pkg/auth"
	"github.com/dmitrymomot/kbooks/pkg/confirm"
	"github.com/dmitrymomot/kbooks/pkg/email"
	"github.com/dmitrymomot/kbooks/pkg/password"
)

const (
	testSecret = "test-secret"
	testBase   = "https://books.example.com"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) FindByEmailOrLogin(ctx context.Context, addr, login string) ([]auth.User, error) {
	args := m.Called(ctx, addr, login)
	users, _ := args.Get(0).([]auth.User)
	return users, args.Error(1)
}

func (m *mockStore) EmailExists(ctx context.Context, addr string) (bool, error) {
	args := m.Called(ctx, addr)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) Insert(ctx context.Context, u auth.NewUser) (auth.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(auth.User), args.Error(1)
}

func (m *mockStore) UpdatePassword(ctx context.Context, login, hash string) error {
	args := m.Called(ctx, login, hash)
	return args.Error(0)
}

func (m *mockStore) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(auth.User), args.Error(1)
}

func (m *mockStore) GetByLogin(ctx context.Context, login string) (auth.User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(auth.User), args.Error(1)
}

func (m *mockStore) GetByEmail(ctx context.Context, addr string) (auth.User, error) {
	args := m.Called(ctx, addr)
	return args.Get(0).(auth.User), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

type recordingObserver struct {
	outcomes []string
}

func (o *recordingObserver) ObserveOutcome(flow, step, outcome string) {
	o.outcomes = append(o.outcomes, flow+"/"+step+"/"+outcome)
}

func fastHasher() *password.Hasher {
	return password.New(password.WithCost(bcrypt.MinCost))
}

func testSigner(t *testing.T) *confirm.Signer {
	t.Helper()
	s, err := confirm.NewSigner(fastHasher(), testSecret)
	require.NoError(t, err)
	return s
}

func testOptions(extra ...auth.Option) []auth.Option {
	return append([]auth.Option{
		auth.WithHasher(fastHasher()),
		auth.WithBaseURL(testBase),
		auth.WithClock(func() time.Time { return testNow }),
	}, extra...)
}

var hrefRe = regexp.MustCompile(`href="([^"]+)"`)

// linkFromBody extracts the confirmation link from a rendered email.
func linkFromBody(t *testing.T, body string) string {
	t.Helper()
	m := hrefRe.FindStringSubmatch(body)
	require.Len(t, m, 2, "no link in body: %s", body)
	return m[1]
}

// segments splits a link into its path segments after route.
func segments(t *testing.T, link, route string) []string {
	t.Helper()
	prefix := testBase + route + "/"
	require.True(t, strings.HasPrefix(link, prefix), "unexpected link %q", link)
	return strings.Split(strings.TrimPrefix(link, prefix), "/")
}

func registrationLink(t *testing.T, link string) auth.RegistrationLink {
	t.Helper()
	s := segments(t, link, auth.RegistrationRoute)
	require.Len(t, s, 5)
	return auth.RegistrationLink{Token: s[0], Username: s[1], HashedPassword: s[2], Email: s[3], Expires: s[4]}
}

func resetLink(t *testing.T, link string) auth.ResetLink {
	t.Helper()
	s := segments(t, link, auth.PasswordResetRoute)
	require.Len(t, s, 3)
	return auth.ResetLink{Token: s[0], Email: s[1], Expires: s[2]}
}

// tamper flips a character inside the bcrypt checksum of an encoded token.
func tamper(token string) string {
	b := []byte(token)
	i := len(b) - 10
	if b[i] == 'a' {
		b[i] = 'b'
	} else {
		b[i] = 'a'
	}
	return string(b)
}
