package account

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/kbooks/handler"
	"github.com/dmitrymomot/kbooks/pkg/auth"
	"github.com/dmitrymomot/kbooks/pkg/jwt"
)

type resetRequest struct {
	Email string `form:"email" json:"email"`
}

type completeResetRequest struct {
	Token    string `path:"token" json:"-"`
	Email    string `path:"email" json:"-"`
	Expires  string `path:"expires" json:"-"`
	Password string `form:"password" json:"password"`
}

type loginRequest struct {
	Login    string `form:"login" json:"login"`
	Password string `form:"password" json:"password"`
}

// authResponse is the body of POST and GET /api/auth.
type authResponse struct {
	Success bool            `json:"success"`
	Token   string          `json:"token,omitempty"`
	User    *auth.FrontUser `json:"user,omitempty"`
	Error   *string         `json:"error"`
}

func (s *Service) requestRegistration(ctx handler.Context, req auth.RegistrationRequest) handler.Response {
	res, err := s.registration.Request(ctx, req)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(res)
}

func (s *Service) confirmRegistration(ctx handler.Context, link auth.RegistrationLink) handler.Response {
	link.Language = s.languageOf(ctx.Request())

	res, err := s.registration.Confirm(ctx, link)
	if err != nil {
		return handler.Error(err)
	}
	if res.Success && s.frontURL != "" {
		return handler.Redirect(s.frontURL + registerOkFragment)
	}
	return handler.JSON(res)
}

func (s *Service) requestReset(ctx handler.Context, req resetRequest) handler.Response {
	res, err := s.reset.Request(ctx, req.Email)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(res)
}

func (s *Service) checkReset(ctx handler.Context, link auth.ResetLink) handler.Response {
	res, err := s.reset.Check(ctx, link)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(res)
}

func (s *Service) completeReset(ctx handler.Context, req completeResetRequest) handler.Response {
	link := auth.ResetLink{Token: req.Token, Email: req.Email, Expires: req.Expires}
	res, err := s.reset.Complete(ctx, link, req.Password)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(res)
}

func (s *Service) login(ctx handler.Context, req loginRequest) handler.Response {
	user, err := s.authn.Login(ctx, req.Login, req.Password)
	if errors.Is(err, auth.ErrUnauthorized) {
		msg := auth.MsgBadCredentials
		return handler.JSON(authResponse{Error: &msg}, handler.WithStatus(http.StatusUnauthorized))
	}
	if err != nil {
		return handler.Error(err)
	}

	token, err := s.tokens.Issue(user.ID.String(), jwt.Claims{
		Login:    user.Login,
		Email:    user.Email,
		Language: user.Language,
	})
	if err != nil {
		return handler.Error(err)
	}

	front := user.Front()
	return handler.JSON(authResponse{Success: true, Token: token, User: &front})
}

func (s *Service) me(ctx handler.Context, _ struct{}) handler.Response {
	claims, ok := jwt.ClaimsFromContext(ctx)
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}

	user, err := s.authn.User(ctx, claims.Login)
	if errors.Is(err, auth.ErrUnauthorized) {
		return handler.Error(handler.ErrUnauthorized)
	}
	if err != nil {
		return handler.Error(err)
	}

	front := user.Front()
	return handler.JSON(authResponse{Success: true, User: &front})
}
