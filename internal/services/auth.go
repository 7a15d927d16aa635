// Package services contains the application services of the A.S.I.A. client:
// registration and authentication against the local credential store, the
// active session, chat dispatch, and history reconciliation.
package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/pixelstudio/asia/internal/common"
	"github.com/pixelstudio/asia/internal/cryptox"
	"github.com/pixelstudio/asia/internal/dbx"
	"github.com/pixelstudio/asia/internal/logging"
	"github.com/pixelstudio/asia/internal/models"
	"github.com/pixelstudio/asia/internal/repositories/users"
)

// AuthService registers and authenticates accounts against the local
// credential store. No server participates in either operation.
//
// Contract:
//   - Register: create an account; fails common.ErrIncompleteFields on blank
//     input and common.ErrAccountExists on a duplicate normalized email.
//   - Authenticate: verify credentials; fails common.ErrAccountNotFound or
//     common.ErrWrongPassword. The stored record is never modified.
type AuthService interface {
	Register(ctx context.Context, name, email string, password []byte) (*models.User, error)
	Authenticate(ctx context.Context, email string, password []byte) (*models.User, error)
}

type authService struct {
	db     *sql.DB
	logger logging.Logger
}

// NewAuthService constructs an AuthService over the local database.
func NewAuthService(db *sql.DB, logger logging.Logger) AuthService {
	return &authService{db: db, logger: logger}
}

// Register normalizes the email, hashes the password, and creates a new
// account with a fresh opaque id. The duplicate check and the insert run in
// one transaction so two registrations cannot interleave between them.
func (a *authService) Register(ctx context.Context, name, email string, password []byte) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = models.NormalizeEmail(email)
	if name == "" || email == "" || len(password) == 0 {
		return nil, common.ErrIncompleteFields
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		PasswordHash: cryptox.HashPassword(password),
	}

	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewSQLiteRepository(tx)

		existing, err := repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return common.ErrAccountExists
		}

		return repo.Insert(ctx, email, user)
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "account created", "email", email)
	return user, nil
}

// Authenticate looks up the normalized email and compares password hashes.
func (a *authService) Authenticate(ctx context.Context, email string, password []byte) (*models.User, error) {
	email = models.NormalizeEmail(email)

	repo := users.NewSQLiteRepository(a.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrAccountNotFound
	}

	if !cryptox.VerifyPassword(user.PasswordHash, password) {
		return nil, common.ErrWrongPassword
	}

	a.logger.Info(ctx, "signed in", "email", email)
	return user, nil
}
