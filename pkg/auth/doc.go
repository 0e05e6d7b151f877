// Package auth implements account registration, password reset and login for
// kbooks.
//
// Registration and password reset both go through an e-mailed confirmation
// link. The link carries its own state: the fields needed to finish the flow,
// an expiry timestamp and a token signing those fields with the server
// secret (see pkg/confirm). Nothing about an outstanding link is stored, so
// a link can be replayed until it expires.
//
// Registration link:
//
//	{base}/register/register/{token}/{username}/{hashed password}/{email}/{expires}
//
// Password reset link:
//
//	{base}/user/forgotten/{token}/{email}/{expires}
//
// Every segment except expires is percent-encoded with pkg/linkcodec.
//
// Verification always runs in the same order: decode the segments, check the
// token, check expiry, then check the store precondition (the user must still
// be absent for registration and present for a reset). The first failing step
// decides the outcome.
//
// Expected outcomes (taken email, wrong or expired link, ...) are returned as
// a Result with a nil error so the HTTP layer can render them with status 200.
// A non-nil error always means a fault: invalid input, storage or mail
// failure, or an internal error.
package auth
