package linkcodec_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kbooks/pkg/linkcodec"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii untouched", "alice", "alice"},
		{"email keeps at sign", "new@x.com", "new@x.com"},
		{"slash escaped", "a/b", "a%2Fb"},
		{"percent escaped", "100%", "100%25"},
		{"reserved set", ` "#<>` + "`" + `?{}`, "%20%22%23%3C%3E%60%3F%7B%7D"},
		{"bcrypt hash", "$2a$04$Xy./abc", "$2a$04$Xy.%2Fabc"},
		{"control and del", "a\tb\x7f", "a%09b%7F"},
		{"utf8 bytes", "é", "%C3%A9"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, linkcodec.Encode(tt.in))
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("round trip over reserved characters", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"alice",
			"a/b/c",
			"50% off?",
			"#hash <tag> {x} `y`",
			"$2b$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW",
			"über@exämple.com",
			"日本語/テキスト",
			"%2F literal",
			"",
		}
		for _, in := range inputs {
			out, err := linkcodec.Decode(linkcodec.Encode(in))
			require.NoError(t, err, in)
			assert.Equal(t, in, out)
		}
	})

	t.Run("lowercase hex accepted", func(t *testing.T) {
		t.Parallel()

		out, err := linkcodec.Decode("a%2fb")
		require.NoError(t, err)
		assert.Equal(t, "a/b", out)
	})

	t.Run("invalid escape", func(t *testing.T) {
		t.Parallel()

		for _, in := range []string{"%", "%4", "%zz", "abc%g1"} {
			_, err := linkcodec.Decode(in)
			require.Error(t, err, in)
			assert.ErrorIs(t, err, linkcodec.ErrDecode)
			assert.ErrorIs(t, err, linkcodec.ErrInvalidEscape)
		}
	})

	t.Run("invalid utf8", func(t *testing.T) {
		t.Parallel()

		_, err := linkcodec.Decode("%C3%28")
		assert.ErrorIs(t, err, linkcodec.ErrDecode)
		assert.ErrorIs(t, err, linkcodec.ErrInvalidUTF8)

		_, err = linkcodec.Decode("\xff")
		assert.ErrorIs(t, err, linkcodec.ErrInvalidUTF8)
	})
}

func TestDecodeAll(t *testing.T) {
	t.Parallel()

	var c linkcodec.Codec

	out, err := c.DecodeAll("a%2Fb", "c", "d%40e")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/b", "c", "d@e"}, out)

	_, err = c.DecodeAll("ok", "%zz")
	assert.ErrorIs(t, err, linkcodec.ErrInvalidEscape)
}

func TestRawPathMiddleware(t *testing.T) {
	t.Parallel()

	var got []string
	r := chi.NewRouter()
	r.Use(linkcodec.RawPathMiddleware)
	r.Get("/link/{a}/{b}", func(w http.ResponseWriter, r *http.Request) {
		got = []string{chi.URLParam(r, "a"), chi.URLParam(r, "b")}
		w.WriteHeader(http.StatusNoContent)
	})

	target := "/link/" + linkcodec.Encode("x/y") + "/" + linkcodec.Encode("plain")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, got, 2)
	assert.Equal(t, "x%2Fy", got[0])
	assert.Equal(t, "plain", got[1])

	decoded, err := linkcodec.Decode(got[0])
	require.NoError(t, err)
	assert.Equal(t, "x/y", decoded)
}
