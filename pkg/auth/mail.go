package auth

import (
	"time"

	"github.com/a-h/templ"
)

//go:generate templ generate -f mail.templ

const (
	SubjectInvitation    = "You have been invited to join khnum"
	SubjectPasswordReset = "Reset your khnum password"

	expiryLayout = "03:04 PM Monday, 2 January, 2006"
)

// invitationEmail is the body of the registration confirmation message.
func invitationEmail(link string, expires time.Time) templ.Component {
	return linkEmail("Please click on the link below to complete registration", link, expires.Format(expiryLayout))
}

// resetEmail is the body of the password reset message.
func resetEmail(link string, expires time.Time) templ.Component {
	return linkEmail("Please click on the link below to choose a new password", link, expires.Format(expiryLayout))
}
