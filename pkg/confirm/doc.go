// Package confirm signs and verifies the payload carried by confirmation links.
//
// A payload is the ordered list of link fields followed by the server secret,
// concatenated without separators. The token is a salted bcrypt hash of that
// payload, so two tokens for the same fields differ and verification always
// goes through bcrypt, never through string equality. Nothing is stored: a
// token is checked by rebuilding the payload from the fields carried next to
// it in the link.
//
// bcrypt only reads the first 72 bytes of its input. Payloads routinely exceed
// that (a registration payload embeds a 60 byte password hash), so the signer
// hashes base64(sha256(payload)) instead of the raw payload. Every byte of
// every field, and of the secret, still influences the token.
//
// Field order is part of the link contract. Callers must pass fields to Issue
// and Verify in exactly the same order.
package confirm
