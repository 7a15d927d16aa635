// Package cryptox implements the client-side password hashing contract:
// a deterministic, unsalted SHA-256 digest in lower-case hex, compared in
// constant time.
//
// NOTE: an unsalted, client-computed hash is comparable by anyone with read
// access to the local store. The contract is kept because no server-side
// authority exists in this client; do not reuse it where real credential
// confidentiality is required.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of the plaintext
// password.
func HashPassword(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password hashes to storedHash. The
// comparison runs in constant time.
func VerifyPassword(storedHash string, password []byte) bool {
	candidate := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(candidate)) == 1
}
