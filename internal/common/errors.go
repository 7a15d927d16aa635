// Package common defines shared sentinel errors and small helpers used
// across the A.S.I.A. client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Registration / authentication errors.
	ErrAccountExists    = errors.New("account already exists")
	ErrAccountNotFound  = errors.New("account not found")
	ErrWrongPassword    = errors.New("wrong password")
	ErrIncompleteFields = errors.New("complete all fields")

	// Chat errors.
	ErrEmptyMessage = errors.New("empty message")

	// History feed errors.
	ErrMalformedFeed = errors.New("malformed history feed")
)
