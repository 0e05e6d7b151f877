package library

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/kbooks/pkg/pg"
	"github.com/dmitrymomot/kbooks/pkg/sqlite"
)

// Store persists books. ListByUser returns books oldest first.
type Store interface {
	Insert(ctx context.Context, b Book) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Book, error)
}

const bookColumns = `id, user_id, title, author, author_code, isbn, publication_date,
	language_main, language_secondary, language_original, created_at`

// MemoryStore keeps books in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	books []Book
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Insert(_ context.Context, b Book) error {
	s.mu.Lock()
	s.books = append(s.books, b)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ListByUser(_ context.Context, userID uuid.UUID) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Book, 0)
	for _, b := range s.books {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	slices.SortStableFunc(out, func(a, b Book) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}

// PostgresStore keeps books in the books table through a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Insert(ctx context.Context, b Book) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO books (`+bookColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		b.ID, b.UserID, b.Title, b.Author, b.AuthorCode, b.ISBN, b.PublicationDate,
		b.LanguageMain, b.LanguageSecondary, b.LanguageOriginal, b.CreatedAt)
	if err != nil {
		if pg.IsForeignKeyViolationError(err) {
			return ErrUnknownOwner
		}
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]Book, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+bookColumns+` FROM books WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Book, error) {
		var b Book
		err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Author, &b.AuthorCode, &b.ISBN, &b.PublicationDate,
			&b.LanguageMain, &b.LanguageSecondary, &b.LanguageOriginal, &b.CreatedAt)
		b.CreatedAt = b.CreatedAt.UTC()
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// SQLiteStore keeps books in the books table of a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Insert(ctx context.Context, b Book) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO books (`+bookColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID.String(), b.UserID.String(), b.Title, b.Author, b.AuthorCode, b.ISBN, b.PublicationDate,
		b.LanguageMain, b.LanguageSecondary, b.LanguageOriginal, b.CreatedAt.Unix())
	if err != nil {
		if sqlite.IsForeignKeyViolation(err) {
			return ErrUnknownOwner
		}
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]Book, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE user_id = ? ORDER BY created_at, rowid`, userID.String())
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]Book, 0)
	for rows.Next() {
		var (
			b           Book
			id, owner   string
			createdUnix int64
		)
		if err := rows.Scan(&id, &owner, &b.Title, &b.Author, &b.AuthorCode, &b.ISBN, &b.PublicationDate,
			&b.LanguageMain, &b.LanguageSecondary, &b.LanguageOriginal, &createdUnix); err != nil {
			return nil, fmt.Errorf("list books: %w", err)
		}
		if b.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("book id %q: %w", id, err)
		}
		if b.UserID, err = uuid.Parse(owner); err != nil {
			return nil, fmt.Errorf("book owner %q: %w", owner, err)
		}
		b.CreatedAt = time.Unix(createdUnix, 0).UTC()
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}
