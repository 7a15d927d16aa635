package users

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

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, password_hash FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.Name, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user[%s]: %w", email, err)
	}
	return &u, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, email string, user *models.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, id, name, password_hash) VALUES (?, ?, ?, ?)`,
		email, user.ID, user.Name, user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user[%s]: %w", email, err)
	}
	return nil
}
