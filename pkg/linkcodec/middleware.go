package linkcodec

import "net/http"

// RawPathMiddleware pins r.URL.RawPath to the escaped request path so routers
// that prefer RawPath (chi does) match and extract parameters on encoded
// segments. Handlers must then Decode every path parameter themselves.
func RawPathMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawPath == "" {
			r.URL.RawPath = r.URL.EscapedPath()
		}
		next.ServeHTTP(w, r)
	})
}
