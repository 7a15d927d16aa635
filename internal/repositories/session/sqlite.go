package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pixelstudio/asia/internal/dbx"
	"github.com/pixelstudio/asia/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, email, name FROM session WHERE id = 1`,
	).Scan(&s.UserID, &s.Email, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, s *models.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (id, user_id, email, name) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			email   = excluded.email,
			name    = excluded.name
	`, s.UserID, s.Email, s.Name)
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
