package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a stored account.
type User struct {
	ID        uuid.UUID
	Login     string
	Email     string
	Password  string // bcrypt hash
	Language  string
	CreatedAt time.Time
}

// NewUser is the data needed to insert an account.
type NewUser struct {
	Login    string
	Email    string
	Password string // bcrypt hash
	Language string
}

// FrontUser is the public view of a User.
type FrontUser struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Language string `json:"language"`
}

func (u User) Front() FrontUser {
	return FrontUser{Login: u.Login, Email: u.Email, Language: u.Language}
}

// Result is the outcome of a flow step as rendered to clients.
type Result struct {
	Success bool    `json:"success"`
	Error   *string `json:"error"`
}

func Success() Result { return Result{Success: true} }

func Failure(msg string) Result { return Result{Error: &msg} }

// Message returns the error message, or "" on success.
func (r Result) Message() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}
