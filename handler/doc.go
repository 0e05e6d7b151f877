// Package handler provides type-safe HTTP request handling for the kbooks API.
//
// Handlers are generic functions that receive a bound request struct and
// return a Response. Wrap turns them into http.HandlerFunc values, running the
// configured binders first and routing binding or rendering failures to an
// ErrorHandler:
//
//	type LoginRequest struct {
//		Login    string `form:"login" json:"login"`
//		Password string `form:"password" json:"password"`
//	}
//
//	func login(ctx handler.Context, req LoginRequest) handler.Response {
//		user, err := authn.Login(ctx, req.Login, req.Password)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(user.Front())
//	}
//
//	r.Post("/api/auth", handler.Wrap(login,
//		handler.WithBinders[handler.Context, LoginRequest](binder.Form(), binder.JSON()),
//		handler.WithErrorHandler[handler.Context, LoginRequest](errorHandler),
//	))
//
// # Errors
//
// Errors reach clients as {"success": false, "error": "..."} bodies. The status
// code comes from StatusCode: HTTPError values carry their own code, binder
// failures are 400 and a StatusMap supplied by the application maps domain
// sentinels. Anything else is a 500 whose message is never exposed.
package handler
