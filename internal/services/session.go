package services

import (
	"context"

	"github.com/pixelstudio/asia/internal/models"
	"github.com/pixelstudio/asia/internal/repositories/session"
)

// SessionManager owns the single active identity. The session is persisted
// so it survives restarts; reads always see the latest write.
type SessionManager interface {
	// Current returns the active session, or nil when signed out.
	Current(ctx context.Context) (*models.Session, error)

	// Activate atomically replaces any existing session.
	Activate(ctx context.Context, userID, email, name string) error

	// Clear signs out.
	Clear(ctx context.Context) error
}

type sessionManager struct {
	repo session.Repository
}

// NewSessionManager constructs a SessionManager over the session repository.
func NewSessionManager(repo session.Repository) SessionManager {
	return &sessionManager{repo: repo}
}

func (m *sessionManager) Current(ctx context.Context) (*models.Session, error) {
	return m.repo.Get(ctx)
}

func (m *sessionManager) Activate(ctx context.Context, userID, email, name string) error {
	return m.repo.Set(ctx, &models.Session{UserID: userID, Email: email, Name: name})
}

func (m *sessionManager) Clear(ctx context.Context) error {
	return m.repo.Clear(ctx)
}
