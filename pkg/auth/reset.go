package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/kbooks/pkg/email"
	"github.com/dmitrymomot/kbooks/pkg/linkcodec"
	"github.com/dmitrymomot/kbooks/pkg/logger"
	"github.com/dmitrymomot/kbooks/pkg/sanitizer"
)

// PasswordReset runs the forgotten password flow.
type PasswordReset struct {
	store  UserStore
	signer TokenSigner
	mailer email.EmailSender
	*options
}

// NewPasswordReset returns the password reset service.
func NewPasswordReset(store UserStore, signer TokenSigner, mailer email.EmailSender, opts ...Option) *PasswordReset {
	return &PasswordReset{
		store:   store,
		signer:  signer,
		mailer:  mailer,
		options: newOptions(opts),
	}
}

// Request mails a reset link when an account with the address exists.
func (s *PasswordReset) Request(ctx context.Context, addr string) (Result, error) {
	addr = sanitizer.NormalizeEmail(addr)
	if err := validate(emailRules(addr)); err != nil {
		return Result{}, err
	}

	if err := s.mustExist(ctx, addr); err != nil {
		return s.outcome(ctx, "request", err)
	}

	expires := s.now().Add(s.ttl).UTC().Truncate(time.Second)
	link, err := s.Link(addr, expires)
	if err != nil {
		return s.outcome(ctx, "request", err)
	}

	body, err := email.RenderHTML(ctx, resetEmail(link, expires))
	if err != nil {
		return s.outcome(ctx, "request", errors.Join(ErrInternal, err))
	}
	if err := s.mailer.SendEmail(ctx, email.SendEmailParams{
		SendTo:   addr,
		Subject:  SubjectPasswordReset,
		BodyHTML: body,
		Tag:      FlowPasswordReset,
	}); err != nil {
		return s.outcome(ctx, "request", errors.Join(ErrMailFailure, err))
	}

	s.logger.InfoContext(ctx, "password reset link sent",
		logger.Flow(FlowPasswordReset),
		logger.Email(addr),
		slog.Time("expires_at", expires),
	)
	return s.outcome(ctx, "request", nil)
}

// Link builds a signed reset link over email and expiry.
func (s *PasswordReset) Link(addr string, expires time.Time) (string, error) {
	exp := formatExpires(expires.Unix())
	token, err := s.signer.Issue(addr, exp)
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	return buildLink(s.baseURL, PasswordResetRoute,
		linkcodec.Encode(token),
		linkcodec.Encode(addr),
		exp,
	), nil
}

// Check verifies a visited reset link without changing anything.
func (s *PasswordReset) Check(ctx context.Context, link ResetLink) (Result, error) {
	_, err := s.verify(ctx, link)
	return s.outcome(ctx, "check", err)
}

// Complete verifies the link again and stores the new password.
func (s *PasswordReset) Complete(ctx context.Context, link ResetLink, newPassword string) (Result, error) {
	if err := validate(passwordRules(newPassword)); err != nil {
		return Result{}, err
	}

	addr, err := s.verify(ctx, link)
	if err != nil {
		return s.outcome(ctx, "complete", err)
	}

	u, err := s.store.GetByEmail(ctx, addr)
	switch {
	case errors.Is(err, ErrUserNotFound):
		return s.outcome(ctx, "complete", conflict(MsgEmailNotFound))
	case err != nil:
		return s.outcome(ctx, "complete", errors.Join(ErrStorageFailure, err))
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return s.outcome(ctx, "complete", errors.Join(ErrInternal, err))
	}
	if err := s.store.UpdatePassword(ctx, u.Login, hashed); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return s.outcome(ctx, "complete", conflict(MsgEmailNotFound))
		}
		return s.outcome(ctx, "complete", errors.Join(ErrStorageFailure, err))
	}

	s.logger.InfoContext(ctx, "password changed",
		logger.Flow(FlowPasswordReset),
		logger.UserID(u.ID.String()),
	)
	return s.outcome(ctx, "complete", nil)
}

// verify runs decode, integrity, expiry and existence checks and returns the
// decoded address.
func (s *PasswordReset) verify(ctx context.Context, link ResetLink) (string, error) {
	fields, err := decodeSegments(link.Token, link.Email)
	if err != nil {
		return "", err
	}
	expires, err := parseExpires(link.Expires)
	if err != nil {
		return "", err
	}
	token, addr := fields[0], fields[1]

	if err := checkToken(s.signer, token, addr, formatExpires(expires)); err != nil {
		return "", err
	}
	if expires < s.now().Unix() {
		return "", ErrLinkExpired
	}
	if err := s.mustExist(ctx, addr); err != nil {
		return "", err
	}
	return addr, nil
}

func (s *PasswordReset) mustExist(ctx context.Context, addr string) error {
	ok, err := s.store.EmailExists(ctx, addr)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	if !ok {
		return conflict(MsgEmailNotFound)
	}
	return nil
}

func (s *PasswordReset) outcome(ctx context.Context, step string, err error) (Result, error) {
	return finish(ctx, s.options, FlowPasswordReset, step, err)
}
