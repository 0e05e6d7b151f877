package userstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/kbooks/pkg/auth"
	"github.com/dmitrymomot/kbooks/pkg/sqlite"
)

// SQLite stores accounts in the users table of a modernc SQLite database.
// created_at is kept as unix seconds.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db, now: time.Now}
}

func (s *SQLite) FindByEmailOrLogin(ctx context.Context, email, login string) ([]auth.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? OR login = ?`, email, login)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		u, err := scanSQLiteUser(rows)
		if err != nil {
			return nil, fmt.Errorf("find users: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	return users, nil
}

func (s *SQLite) EmailExists(ctx context.Context, email string) (bool, error) {
	var ok bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = ?)`, email).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("email exists: %w", err)
	}
	return ok, nil
}

func (s *SQLite) Insert(ctx context.Context, nu auth.NewUser) (auth.User, error) {
	u := auth.User{
		ID:        uuid.New(),
		Login:     nu.Login,
		Email:     nu.Email,
		Password:  nu.Password,
		Language:  nu.Language,
		CreatedAt: s.now().UTC().Truncate(time.Second),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID.String(), u.Login, u.Email, u.Password, u.Language, u.CreatedAt.Unix())
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return auth.User{}, auth.ErrUserAlreadyExists
		}
		return auth.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (s *SQLite) UpdatePassword(ctx context.Context, login, hash string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET password = ? WHERE login = ?`, hash, login)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if n == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

func (s *SQLite) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	return s.getOne(ctx, "id", id.String())
}

func (s *SQLite) GetByLogin(ctx context.Context, login string) (auth.User, error) {
	return s.getOne(ctx, "login", login)
}

func (s *SQLite) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	return s.getOne(ctx, "email", email)
}

func (s *SQLite) getOne(ctx context.Context, column string, value any) (auth.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+column+` = ?`, value)
	u, err := scanSQLiteUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("get user by %s: %w", column, err)
	}
	return u, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSQLiteUser(row scanner) (auth.User, error) {
	var (
		u       auth.User
		id      string
		created int64
	)
	if err := row.Scan(&id, &u.Login, &u.Email, &u.Password, &u.Language, &created); err != nil {
		return auth.User{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return auth.User{}, fmt.Errorf("user id %q: %w", id, err)
	}
	u.ID = parsed
	u.CreatedAt = time.Unix(created, 0).UTC()
	return u, nil
}
