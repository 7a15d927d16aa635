// Package users persists the local credential mapping: one record per
// normalized email.
package users

import (
	"context"

	"github.com/pixelstudio/asia/internal/models"
)

// Repository is the credential-store persistence surface.
type Repository interface {
	// GetByEmail returns the record stored under the normalized email, or
	// (nil, nil) when no such account exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Insert stores a new record under the normalized email. The caller is
	// responsible for the duplicate check; run both inside one transaction.
	Insert(ctx context.Context, email string, user *models.User) error
}
