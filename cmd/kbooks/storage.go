package main

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/kbooks/pkg/auth"
	"github.com/dmitrymomot/kbooks/pkg/config"
	"github.com/dmitrymomot/kbooks/pkg/httpserver"
	"github.com/dmitrymomot/kbooks/pkg/library"
	"github.com/dmitrymomot/kbooks/pkg/migrations"
	"github.com/dmitrymomot/kbooks/pkg/pg"
	"github.com/dmitrymomot/kbooks/pkg/sqlite"
	"github.com/dmitrymomot/kbooks/pkg/userstore"
)

// storage bundles the stores of one driver with their readiness probes.
type storage struct {
	users  auth.UserStore
	books  library.Store
	checks []httpserver.Check
	close  func()
}

// openStorage connects the configured driver and applies its migrations.
func openStorage(ctx context.Context, driver string, log *slog.Logger) (*storage, error) {
	switch driver {
	case driverPostgres:
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx, pool, migrations.FS, migrations.PostgresDir, cfg, log); err != nil {
			pool.Close()
			return nil, err
		}
		return &storage{
			users:  userstore.NewPostgres(pool),
			books:  library.NewPostgresStore(pool),
			checks: []httpserver.Check{{Name: "postgres", Fn: pg.Healthcheck(pool)}},
			close:  pool.Close,
		}, nil

	case driverSQLite:
		var cfg sqlite.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		db, err := sqlite.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := sqlite.Migrate(ctx, db, migrations.FS, migrations.SQLiteDir, cfg, log); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &storage{
			users:  userstore.NewSQLite(db),
			books:  library.NewSQLiteStore(db),
			checks: []httpserver.Check{{Name: "sqlite", Fn: sqlite.Healthcheck(db)}},
			close:  func() { _ = db.Close() },
		}, nil
	}

	log.WarnContext(ctx, "using in-memory storage, data is lost on restart")
	return &storage{
		users: userstore.NewMemory(),
		books: library.NewMemoryStore(),
		close: func() {},
	}, nil
}
