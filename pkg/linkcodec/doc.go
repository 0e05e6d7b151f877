// Package linkcodec percent-encodes opaque values so they can be embedded as
// single segments of a URL path and decoded back without loss.
//
// The escape set covers C0 controls, DEL, every non-ASCII byte and the
// characters that would split or reinterpret a path segment:
// space " # < > ` ? { } % /. Everything else is left as is, so bcrypt hashes
// and most e-mail addresses stay readable inside confirmation links.
//
// Usage:
//
//	seg := linkcodec.Encode("$2a$10$abc/def")   // "$2a$10$abc%2Fdef"
//	raw, err := linkcodec.Decode(seg)
//	if err != nil {
//	    // treat as an invalid link
//	}
//
// Routers that unescape the path before matching (net/http fills
// URL.Path with the decoded form) would split a segment on an encoded "/".
// RawPathMiddleware forces chi to route on the escaped path so that every
// URL parameter reaches the handler still encoded.
package linkcodec
