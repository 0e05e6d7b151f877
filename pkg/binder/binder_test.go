package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kbooks/pkg/binder"
)

type signupForm struct {
	Email    string   `form:"email" json:"email"`
	Username string   `form:"username" json:"username"`
	Age      int      `form:"age" json:"age"`
	Agree    bool     `form:"agree" json:"agree"`
	Nick     *string  `form:"nick" json:"nick"`
	Tags     []string `form:"tag" json:"tags"`
	Ignored  string   `form:"-" json:"-"`
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		body := url.Values{
			"email":    {"ann@example.com"},
			"username": {"ann"},
			"age":      {"42"},
			"agree":    {"on"},
			"nick":     {"annie"},
			"tag":      {"a", "b"},
			"Ignored":  {"x"},
		}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

		var got signupForm
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "ann@example.com", got.Email)
		assert.Equal(t, "ann", got.Username)
		assert.Equal(t, 42, got.Age)
		assert.True(t, got.Agree)
		require.NotNil(t, got.Nick)
		assert.Equal(t, "annie", *got.Nick)
		assert.Equal(t, []string{"a", "b"}, got.Tags)
		assert.Empty(t, got.Ignored)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("email", "bob@example.com"))
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())

		var got signupForm
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "bob@example.com", got.Email)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("age=old"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got signupForm
		err := binder.Form()(req, &got)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})

	t.Run("not applicable to json", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		var got signupForm
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("non pointer target", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("email=a"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		assert.ErrorIs(t, binder.Form()(req, signupForm{}), binder.ErrInvalidForm)
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ct      string
		body    string
		wantErr error
	}{
		{name: "valid", ct: "application/json", body: `{"email":"ann@example.com","age":3}`},
		{name: "with charset", ct: "application/json; charset=utf-8", body: `{"email":"ann@example.com"}`},
		{name: "unknown field", ct: "application/json", body: `{"nope":1}`, wantErr: binder.ErrInvalidJSON},
		{name: "empty body", ct: "application/json", body: ``, wantErr: binder.ErrInvalidJSON},
		{name: "trailing data", ct: "application/json", body: `{"email":"a"}{"email":"b"}`, wantErr: binder.ErrInvalidJSON},
		{name: "malformed", ct: "application/json", body: `{"email":`, wantErr: binder.ErrInvalidJSON},
		{name: "form body", ct: "application/x-www-form-urlencoded", body: `email=a`, wantErr: binder.ErrBinderNotApplicable},
		{name: "no content type", ct: "", body: `{}`, wantErr: binder.ErrBinderNotApplicable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.ct != "" {
				req.Header.Set("Content-Type", tt.ct)
			}

			var got signupForm
			err := binder.JSON()(req, &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ann@example.com", got.Email)
		})
	}
}

type linkParams struct {
	Token   string `path:"token"`
	Email   string `path:"email"`
	Expires int64  `path:"expires"`
	Lang    string `path:"-"`
}

func TestPath(t *testing.T) {
	t.Parallel()

	params := map[string]string{
		"token":   "abc%2Fdef",
		"email":   "ann%40example.com",
		"expires": "1710158400",
	}
	extract := func(_ *http.Request, key string) string { return params[key] }

	t.Run("binds raw values", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		var got linkParams
		require.NoError(t, binder.Path(extract)(req, &got))
		assert.Equal(t, "abc%2Fdef", got.Token)
		assert.Equal(t, "ann%40example.com", got.Email)
		assert.Equal(t, int64(1710158400), got.Expires)
		assert.Empty(t, got.Lang)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		bad := func(_ *http.Request, key string) string {
			if key == "expires" {
				return "soon"
			}
			return "x"
		}

		var got linkParams
		assert.ErrorIs(t, binder.Path(bad)(req, &got), binder.ErrInvalidPath)
	})

	t.Run("nil extractor", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		var got linkParams
		assert.ErrorIs(t, binder.Path(nil)(req, &got), binder.ErrInvalidPath)
	})
}
