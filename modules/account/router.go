package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/kbooks/handler"
	"github.com/dmitrymomot/kbooks/pkg/auth"
	"github.com/dmitrymomot/kbooks/pkg/binder"
	"github.com/dmitrymomot/kbooks/pkg/jwt"
)

// Handle returns the account routes. Link routes must be served behind
// linkcodec.RawPathMiddleware so that parameters stay percent-encoded.
//
//	r.Mount("/", accountSvc.Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		if s.rateLimit != nil {
			r.Use(s.rateLimit)
		}

		r.Post("/register/request", handler.Wrap(s.requestRegistration,
			handler.WithBinders[handler.Context, auth.RegistrationRequest](binder.Form(), binder.JSON()),
			handler.WithErrorHandler[handler.Context, auth.RegistrationRequest](s.errorHandler),
		))

		r.Post("/user/forgotten", handler.Wrap(s.requestReset,
			handler.WithBinders[handler.Context, resetRequest](binder.Form(), binder.JSON()),
			handler.WithErrorHandler[handler.Context, resetRequest](s.errorHandler),
		))

		r.Post("/user/forgotten/{token}/{email}/{expires}", handler.Wrap(s.completeReset,
			handler.WithBinders[handler.Context, completeResetRequest](
				binder.Path(chi.URLParam),
				binder.Form(),
				binder.JSON(),
			),
			handler.WithErrorHandler[handler.Context, completeResetRequest](s.errorHandler),
		))

		r.Post("/api/auth", handler.Wrap(s.login,
			handler.WithBinders[handler.Context, loginRequest](binder.Form(), binder.JSON()),
			handler.WithErrorHandler[handler.Context, loginRequest](s.errorHandler),
		))
	})

	r.Get("/register/register/{token}/{username}/{hpass}/{email}/{expires}", handler.Wrap(s.confirmRegistration,
		handler.WithBinders[handler.Context, auth.RegistrationLink](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, auth.RegistrationLink](s.errorHandler),
	))

	r.Get("/user/forgotten/{token}/{email}/{expires}", handler.Wrap(s.checkReset,
		handler.WithBinders[handler.Context, auth.ResetLink](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, auth.ResetLink](s.errorHandler),
	))

	r.With(jwt.Middleware(s.tokens, s.unauthorized)).Get("/api/auth", handler.Wrap(s.me,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

func (s *Service) unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	s.errorHandler(handler.NewContext(w, r), err)
}
