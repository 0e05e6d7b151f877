// Command kbooks runs the personal library API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/kbooks/handler"
	"github.com/dmitrymomot/kbooks/modules/account"
	booksmod "github.com/dmitrymomot/kbooks/modules/library"
	"github.com/dmitrymomot/kbooks/pkg/auth"
	"github.com/dmitrymomot/kbooks/pkg/config"
	"github.com/dmitrymomot/kbooks/pkg/confirm"
	"github.com/dmitrymomot/kbooks/pkg/email"
	"github.com/dmitrymomot/kbooks/pkg/httpserver"
	"github.com/dmitrymomot/kbooks/pkg/jwt"
	"github.com/dmitrymomot/kbooks/pkg/library"
	"github.com/dmitrymomot/kbooks/pkg/linkcodec"
	"github.com/dmitrymomot/kbooks/pkg/logger"
	"github.com/dmitrymomot/kbooks/pkg/metrics"
	"github.com/dmitrymomot/kbooks/pkg/password"
	"github.com/dmitrymomot/kbooks/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("kbooks stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	var passCfg password.Config
	if err := config.Load(&passCfg); err != nil {
		return err
	}
	hasher := password.NewFromConfig(passCfg)

	signer, err := confirm.NewSigner(hasher, cfg.SecretKey)
	if err != nil {
		return err
	}

	var mailCfg email.Config
	if err := config.Load(&mailCfg); err != nil {
		return err
	}
	mailer, err := email.NewFromConfig(mailCfg)
	if err != nil {
		return err
	}

	var jwtCfg jwt.Config
	if err := config.Load(&jwtCfg); err != nil {
		return err
	}
	if jwtCfg.Secret == "" {
		jwtCfg.Secret = cfg.SecretKey
	}
	tokens, err := jwt.NewFromConfig(jwtCfg)
	if err != nil {
		return err
	}

	store, err := openStorage(ctx, cfg.StorageDriver, log)
	if err != nil {
		return err
	}
	defer store.close()

	limiter, err := newRateLimiter(ctx, log)
	if err != nil {
		return err
	}
	defer limiter.close()

	authOpts := []auth.Option{
		auth.WithHasher(hasher),
		auth.WithBaseURL(cfg.BaseURL),
		auth.WithLinkTTL(cfg.LinkTTL),
		auth.WithLogger(log),
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware, middleware.RealIP, middleware.Recoverer, linkcodec.RawPathMiddleware)

	if cfg.MetricsEnabled {
		m := metrics.New()
		authOpts = append(authOpts, auth.WithObserver(m))
		r.Use(m.Middleware)
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	errorHandler := handler.NewErrorHandler(log, statusMap())

	accountSvc := account.New(
		auth.NewRegistration(store.users, signer, mailer, authOpts...),
		auth.NewPasswordReset(store.users, signer, mailer, authOpts...),
		auth.NewAuthenticator(store.users, authOpts...),
		tokens,
		account.WithFrontURL(cfg.FrontURL),
		account.WithRateLimit(limiter.middleware),
		account.WithErrorHandler(errorHandler),
		account.WithLogger(log),
	)
	bookSvc := booksmod.New(library.NewService(store.books, library.WithLogger(log)), tokens, errorHandler)

	r.Get("/live", httpserver.LivenessHandler())
	r.Get("/ready", httpserver.ReadinessHandler(log, append(store.checks, limiter.checks...)...))
	r.Mount("/api/book", bookSvc.Handle())
	r.Mount("/", accountSvc.Handle())

	var httpCfg httpserver.Config
	if err := config.Load(&httpCfg); err != nil {
		return err
	}
	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(ctx context.Context, l *slog.Logger) {
			l.InfoContext(ctx, "kbooks ready",
				slog.String("storage", cfg.StorageDriver),
				slog.String("base_url", cfg.BaseURL),
				slog.Bool("metrics", cfg.MetricsEnabled),
			)
		}),
		httpserver.WithStopHook(func(ctx context.Context, l *slog.Logger) {
			l.InfoContext(ctx, "kbooks stopped")
		}),
	)
	return srv.Run(ctx, r)
}
