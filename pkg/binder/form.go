package binder

import (
	"fmt"
	"net/http"
)

// maxMultipartMemory bounds the in-memory part of multipart forms.
const maxMultipartMemory = 1 << 20

// Form binds urlencoded and multipart form fields into `form:"name"` tagged
// fields. Requests with another media type yield ErrBinderNotApplicable.
//
//	type RegisterRequest struct {
//		Email    string `form:"email"`
//		Username string `form:"username"`
//		Password string `form:"password"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		switch mediaType(r) {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
		case "multipart/form-data":
			if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
		default:
			return ErrBinderNotApplicable
		}
		return bindToStruct(v, "form", r.PostForm, ErrInvalidForm)
	}
}
