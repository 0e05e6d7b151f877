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

// RegistrationRequest is the sign-up form.
type RegistrationRequest struct {
	Email    string `form:"email" json:"email"`
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Registration runs the e-mail confirmed sign-up flow.
type Registration struct {
	store  UserStore
	signer TokenSigner
	mailer email.EmailSender
	*options
}

// NewRegistration returns the sign-up service.
func NewRegistration(store UserStore, signer TokenSigner, mailer email.EmailSender, opts ...Option) *Registration {
	return &Registration{
		store:   store,
		signer:  signer,
		mailer:  mailer,
		options: newOptions(opts),
	}
}

// Request checks that the email and username are free and mails a
// confirmation link. Nothing is stored until the link is visited.
func (s *Registration) Request(ctx context.Context, req RegistrationRequest) (Result, error) {
	req.Email = sanitizer.NormalizeEmail(req.Email)
	req.Username = sanitizer.NormalizeText(req.Username)
	if err := validate(emailRules(req.Email), usernameRules(req.Username), passwordRules(req.Password)); err != nil {
		return Result{}, err
	}

	if err := checkAvailable(ctx, s.store, req.Email, req.Username); err != nil {
		return s.outcome(ctx, "request", err)
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return s.outcome(ctx, "request", errors.Join(ErrInternal, err))
	}

	expires := s.now().Add(s.ttl).UTC().Truncate(time.Second)
	link, err := s.Link(req.Username, hashed, req.Email, expires)
	if err != nil {
		return s.outcome(ctx, "request", err)
	}

	body, err := email.RenderHTML(ctx, invitationEmail(link, expires))
	if err != nil {
		return s.outcome(ctx, "request", errors.Join(ErrInternal, err))
	}
	if err := s.mailer.SendEmail(ctx, email.SendEmailParams{
		SendTo:   req.Email,
		Subject:  SubjectInvitation,
		BodyHTML: body,
		Tag:      FlowRegistration,
	}); err != nil {
		return s.outcome(ctx, "request", errors.Join(ErrMailFailure, err))
	}

	s.logger.InfoContext(ctx, "registration link sent",
		logger.Flow(FlowRegistration),
		logger.Email(req.Email),
		slog.Time("expires_at", expires),
	)
	return s.outcome(ctx, "request", nil)
}

// Link builds a signed registration link. The token covers username,
// hashed password, email and expiry, in that order.
func (s *Registration) Link(username, hashedPassword, addr string, expires time.Time) (string, error) {
	exp := formatExpires(expires.Unix())
	token, err := s.signer.Issue(username, hashedPassword, addr, exp)
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	return buildLink(s.baseURL, RegistrationRoute,
		linkcodec.Encode(token),
		linkcodec.Encode(username),
		linkcodec.Encode(hashedPassword),
		linkcodec.Encode(addr),
		exp,
	), nil
}

// Confirm verifies a visited registration link and creates the account.
func (s *Registration) Confirm(ctx context.Context, link RegistrationLink) (Result, error) {
	u, err := s.verify(link)
	if err != nil {
		return s.outcome(ctx, "confirm", err)
	}

	// Time has passed since the link was issued.
	if err := checkAvailable(ctx, s.store, u.Email, u.Login); err != nil {
		return s.outcome(ctx, "confirm", err)
	}

	created, err := s.store.Insert(ctx, u)
	if errors.Is(err, ErrUserAlreadyExists) {
		err = conflictFor(ctx, s.store, u.Email, u.Login)
	}
	if err != nil {
		if !errors.Is(err, ErrConflict) {
			err = errors.Join(ErrStorageFailure, err)
		}
		return s.outcome(ctx, "confirm", err)
	}

	s.logger.InfoContext(ctx, "account created",
		logger.Flow(FlowRegistration),
		logger.UserID(created.ID.String()),
		logger.Email(created.Email),
	)
	return s.outcome(ctx, "confirm", nil)
}

// verify runs decode, integrity and expiry checks in that order.
func (s *Registration) verify(link RegistrationLink) (NewUser, error) {
	fields, err := decodeSegments(link.Token, link.Username, link.HashedPassword, link.Email)
	if err != nil {
		return NewUser{}, err
	}
	expires, err := parseExpires(link.Expires)
	if err != nil {
		return NewUser{}, err
	}
	token, username, hashed, addr := fields[0], fields[1], fields[2], fields[3]

	if err := checkToken(s.signer, token, username, hashed, addr, formatExpires(expires)); err != nil {
		return NewUser{}, err
	}
	if expires < s.now().Unix() {
		return NewUser{}, ErrLinkExpired
	}

	lang := link.Language
	if lang == "" {
		lang = s.defaultLanguage
	}
	return NewUser{Login: username, Email: addr, Password: hashed, Language: lang}, nil
}

func (s *Registration) outcome(ctx context.Context, step string, err error) (Result, error) {
	return finish(ctx, s.options, FlowRegistration, step, err)
}

// checkAvailable fails with a conflict when email or login is already used.
func checkAvailable(ctx context.Context, store UserStore, addr, login string) error {
	users, err := store.FindByEmailOrLogin(ctx, addr, login)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	if len(users) == 0 {
		return nil
	}
	return conflictFrom(users, addr)
}

// conflictFor explains an insert rejected by the store's unique constraints.
func conflictFor(ctx context.Context, store UserStore, addr, login string) error {
	users, err := store.FindByEmailOrLogin(ctx, addr, login)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return conflictFrom(users, addr)
}

// conflictFrom reports the email collision first when both collide.
func conflictFrom(users []User, addr string) error {
	for _, u := range users {
		if u.Email == addr {
			return conflict(MsgEmailTaken)
		}
	}
	return conflict(MsgUsernameTaken)
}

// finish converts a step error into the Result/error pair returned to callers.
func finish(ctx context.Context, o *options, flow, step string, err error) (Result, error) {
	if res, ok := ResultFromError(err); ok {
		outcome := "success"
		if !res.Success {
			outcome = res.Message()
			o.logger.DebugContext(ctx, "confirmation step rejected",
				logger.Flow(flow),
				slog.String("step", step),
				logger.Outcome(outcome),
			)
		}
		o.observer.ObserveOutcome(flow, step, outcome)
		return res, nil
	}

	o.observer.ObserveOutcome(flow, step, "error")
	o.logger.ErrorContext(ctx, "confirmation step failed",
		logger.Flow(flow),
		slog.String("step", step),
		logger.Error(err),
	)
	return Result{}, err
}
