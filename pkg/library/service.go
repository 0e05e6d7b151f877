package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/kbooks/pkg/logger"
	"github.com/dmitrymomot/kbooks/pkg/sanitizer"
	"github.com/dmitrymomot/kbooks/pkg/validator"
)

const (
	maxTitleLength  = 512
	maxAuthorLength = 256
)

// Service creates and lists books.
type Service struct {
	store  Store
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now, logger: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates nb and stores it as a book owned by userID.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, nb NewBook) (Book, error) {
	b, err := s.prepare(nb)
	if err != nil {
		return Book{}, err
	}
	b.ID = uuid.New()
	b.UserID = userID
	b.CreatedAt = s.now().UTC().Truncate(time.Second)

	if err := s.store.Insert(ctx, b); err != nil {
		if errors.Is(err, ErrUnknownOwner) {
			return Book{}, err
		}
		s.logger.ErrorContext(ctx, "book insert failed", logger.UserID(userID.String()), logger.Error(err))
		return Book{}, errors.Join(ErrStorageFailure, err)
	}

	s.logger.InfoContext(ctx, "book created",
		logger.UserID(userID.String()),
		slog.String("book_id", b.ID.String()),
		slog.String("author_code", b.AuthorCode),
	)
	return b, nil
}

// List returns the books of userID, oldest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Book, error) {
	books, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}
	return books, nil
}

func (s *Service) prepare(nb NewBook) (Book, error) {
	b := Book{
		Title:           sanitizer.RemoveExtraWhitespace(nb.Title),
		Author:          sanitizer.RemoveExtraWhitespace(nb.Author),
		ISBN:            sanitizer.NormalizeISBN(nb.ISBN),
		PublicationDate: strings.TrimSpace(nb.PublicationDate),
	}
	mainLang := strings.TrimSpace(nb.LanguageMain)
	secondary := strings.TrimSpace(nb.LanguageSecondary)
	original := strings.TrimSpace(nb.LanguageOriginal)

	if err := validator.Apply(
		validator.Required("title", b.Title),
		validator.MaxRunes("title", b.Title, maxTitleLength),
		validator.Required("author", b.Author),
		validator.ContainsLetter("author", b.Author),
		validator.MaxRunes("author", b.Author, maxAuthorLength),
		validator.ValidISBN("isbn", b.ISBN),
		validator.Required("language_main", mainLang),
		validator.ValidLanguage("language_main", mainLang),
		validator.ValidLanguage("language_secondary", secondary),
		validator.ValidLanguage("language_original", original),
	); err != nil {
		return Book{}, fmt.Errorf("%w: %w", ErrInvalidBook, err)
	}

	b.AuthorCode = AuthorCode(b.Author)
	if mainLang != "" {
		b.LanguageMain = languageCode(mainLang)
	}
	if secondary != "" {
		b.LanguageSecondary = languageCode(secondary)
	}
	if original != "" {
		b.LanguageOriginal = languageCode(original)
	}
	return b, nil
}
