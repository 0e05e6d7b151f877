package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kbooks/pkg/email"
)

func TestLinkEmails(t *testing.T) {
	t.Parallel()

	expires := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)

	t.Run("invitation", func(t *testing.T) {
		t.Parallel()
		body, err := email.RenderHTML(context.Background(), invitationEmail("http://localhost:8080/register/register/a%2Fb/ann/x/ann@example.com/1710158400", expires))
		require.NoError(t, err)
		assert.Equal(t,
			`<p>Please click on the link below to complete registration.<br>`+
				`<a href="http://localhost:8080/register/register/a%2Fb/ann/x/ann@example.com/1710158400">`+
				`http://localhost:8080/register/register/a%2Fb/ann/x/ann@example.com/1710158400</a><br>`+
				`This link expires on <strong>12:00 PM Monday, 11 March, 2024</strong></p>`,
			body)
	})

	t.Run("reset escapes the link", func(t *testing.T) {
		t.Parallel()
		body, err := email.RenderHTML(context.Background(), resetEmail(`http://localhost/user/forgotten/"x"&y`, expires))
		require.NoError(t, err)
		assert.Contains(t, body, "choose a new password")
		assert.Contains(t, body, `href="http://localhost/user/forgotten/&#34;x&#34;&amp;y"`)
	})

	t.Run("rejects script urls", func(t *testing.T) {
		t.Parallel()
		body, err := email.RenderHTML(context.Background(), resetEmail("javascript:alert(1)", expires))
		require.NoError(t, err)
		assert.Contains(t, body, `href="about:invalid#TemplFailedSanitizationURL"`)
	})
}
