package userstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/kbooks/pkg/auth"
	"github.com/dmitrymomot/kbooks/pkg/pg"
)

const userColumns = "id, login, email, password, language, created_at"

// Postgres stores accounts in the users table through a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (s *Postgres) FindByEmailOrLogin(ctx context.Context, email, login string) ([]auth.User, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 OR login = $2`, email, login)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	users, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (auth.User, error) { return scanPgUser(r) })
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	return users, nil
}

func (s *Postgres) EmailExists(ctx context.Context, email string) (bool, error) {
	var ok bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("email exists: %w", err)
	}
	return ok, nil
}

func (s *Postgres) Insert(ctx context.Context, nu auth.NewUser) (auth.User, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO users (id, login, email, password, language)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+userColumns,
		uuid.New(), nu.Login, nu.Email, nu.Password, nu.Language)
	u, err := scanPgUser(row)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return auth.User{}, auth.ErrUserAlreadyExists
		}
		return auth.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (s *Postgres) UpdatePassword(ctx context.Context, login, hash string) error {
	tag, err := s.pool.Exec(ctx, `UPDATE users SET password = $1 WHERE login = $2`, hash, login)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

func (s *Postgres) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	return s.getOne(ctx, "id", id)
}

func (s *Postgres) GetByLogin(ctx context.Context, login string) (auth.User, error) {
	return s.getOne(ctx, "login", login)
}

func (s *Postgres) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	return s.getOne(ctx, "email", email)
}

// getOne is only called with constant column names.
func (s *Postgres) getOne(ctx context.Context, column string, value any) (auth.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+column+` = $1`, value)
	u, err := scanPgUser(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("get user by %s: %w", column, err)
	}
	return u, nil
}

func scanPgUser(row pgx.Row) (auth.User, error) {
	var u auth.User
	err := row.Scan(&u.ID, &u.Login, &u.Email, &u.Password, &u.Language, &u.CreatedAt)
	if err != nil {
		return auth.User{}, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

