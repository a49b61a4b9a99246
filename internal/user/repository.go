package user

import (
	"context"
	"database/sql"
	"errors"

	"supplydesk/internal/logger"

	"go.uber.org/zap"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	FindByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, username, passwordHash string, isAdmin bool) (User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, is_admin FROM users WHERE username = $1",
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	return u, err
}

// Create is used by the seed command; the gateway has no sign-up action.
func (r *repository) Create(ctx context.Context, username, passwordHash string, isAdmin bool) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (username, password_hash, is_admin) VALUES ($1, $2, $3) RETURNING id, username, password_hash, is_admin",
		username, passwordHash, isAdmin,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert user",
			zap.String("username", username),
			zap.Error(err),
		)
	}
	return u, err
}
