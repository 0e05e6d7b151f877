// Package pg bootstraps the PostgreSQL backend of kbooks on top of pgx/v5.
//
// Connect opens a *pgxpool.Pool from Config (populated from PG_* variables),
// retrying while the database comes up. Migrate applies goose migrations from
// an fs.FS, normally the embedded set in pkg/migrations:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := pg.Migrate(ctx, pool, migrations.FS, migrations.PostgresDir, cfg, log); err != nil {
//		return err
//	}
//
// Healthcheck adapts the pool to the func(context.Context) error shape used by
// httpserver.HealthCheckHandler. IsDuplicateKeyError and IsNotFoundError let
// the stores translate driver errors into their own sentinels.
package pg
