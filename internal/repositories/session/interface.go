// Package session persists the single active identity. The table holds at
// most one row; Set replaces it atomically via upsert.
package session

import (
	"context"

	"github.com/pixelstudio/asia/internal/models"
)

// Repository is the session persistence surface.
type Repository interface {
	// Get returns the active session, or (nil, nil) when signed out.
	Get(ctx context.Context) (*models.Session, error)

	// Set replaces any existing session with s.
	Set(ctx context.Context, s *models.Session) error

	// Clear removes the active session. Clearing an absent session is a no-op.
	Clear(ctx context.Context) error
}
