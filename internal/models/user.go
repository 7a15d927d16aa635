// Package models defines client-side data models used by the A.S.I.A. client.
package models

import "strings"

// User is one record of the local credential mapping. Records are keyed by
// normalized email, created on registration and never mutated afterwards.
type User struct {
	// ID is an opaque, globally unique identifier for the account.
	ID string

	// Name is the display name entered at registration.
	Name string

	// PasswordHash is the hex SHA-256 digest of the account password.
	PasswordHash string
}

// Session is the single currently active identity, or nil when signed out.
type Session struct {
	UserID string
	Email  string
	Name   string
}

// NormalizeEmail canonicalizes an email for use as the credential-store key:
// surrounding whitespace is trimmed and the address is lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
