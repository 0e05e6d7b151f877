package library

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalogued book.
type Book struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"-"`
	Title             string    `json:"title"`
	Author            string    `json:"author"`
	AuthorCode        string    `json:"author_code"`
	ISBN              string    `json:"isbn"`
	PublicationDate   string    `json:"publicationdate"`
	LanguageMain      string    `json:"language_main"`
	LanguageSecondary string    `json:"language_secondary,omitempty"`
	LanguageOriginal  string    `json:"language_original"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewBook is the book creation form.
type NewBook struct {
	Title             string `form:"title" json:"title"`
	Author            string `form:"author" json:"author"`
	ISBN              string `form:"isbn" json:"isbn"`
	PublicationDate   string `form:"publicationdate" json:"publicationdate"`
	LanguageMain      string `form:"language_main" json:"language_main"`
	LanguageSecondary string `form:"language_secondary" json:"language_secondary"`
	LanguageOriginal  string `form:"language_original" json:"language_original"`
}
