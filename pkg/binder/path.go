package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// Path binds route parameters into `path:"name"` tagged fields using
// extractor, normally chi.URLParam. Values are passed through as the router
// returns them; with chi and a RawPath set they are still percent-encoded.
//
//	type ResetLink struct {
//		Token   string `path:"token"`
//		Email   string `path:"email"`
//		Expires string `path:"expires"`
//	}
//
//	r.Get("/user/forgotten/{token}/{email}/{expires}", handler.Wrap(check,
//		handler.WithBinders[handler.Context, ResetLink](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, key string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidPath)
		}

		rt := rv.Elem().Type()
		values := make(map[string][]string, rt.NumField())
		for i := range rt.NumField() {
			name, skip := parseFieldTag(rt.Field(i), "path")
			if skip {
				continue
			}
			if value := extractor(r, name); value != "" {
				values[name] = []string{value}
			}
		}

		return bindToStruct(v, "path", values, ErrInvalidPath)
	}
}
