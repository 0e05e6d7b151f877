package handler

import (
	"encoding/json"
	"net/http"
)

type jsonResponse struct {
	data   any
	status int
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithStatus overrides the default 200 status.
func WithStatus(code int) JSONOption {
	return func(r *jsonResponse) {
		if code > 0 {
			r.status = code
		}
	}
}

// JSON renders data as the response body.
func JSON(data any, opts ...JSONOption) Response {
	r := &jsonResponse{data: data, status: http.StatusOK}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	body, err := json.Marshal(r.data)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(r.status)
	_, err = w.Write(append(body, '\n'))
	return err
}

type redirectResponse struct {
	url  string
	code int
}

// Redirect responds with 302 Found to url.
func Redirect(url string) Response {
	return RedirectWithStatus(url, http.StatusFound)
}

// RedirectWithStatus redirects with a specific 3xx code.
func RedirectWithStatus(url string, code int) Response {
	if code < 300 || code > 399 {
		code = http.StatusFound
	}
	return redirectResponse{url: url, code: code}
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	http.Redirect(w, req, r.url, r.code)
	return nil
}

type errorResponse struct{ err error }

// Error hands err to the route's ErrorHandler.
func Error(err error) Response {
	return errorResponse{err: err}
}

func (r errorResponse) Render(http.ResponseWriter, *http.Request) error {
	if r.err == nil {
		return ErrNilResponse
	}
	return r.err
}
