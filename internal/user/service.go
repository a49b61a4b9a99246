package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"supplydesk/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, username, password string) (string, User, error)
	Register(ctx context.Context, username, password string, isAdmin bool) (User, error)
}

type service struct {
	repo      Repository
	jwtSecret string
	now       func() time.Time
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{repo: repo, jwtSecret: jwtSecret, now: time.Now}
}

// Login verifies the credentials. Unknown user and wrong password are
// indistinguishable to the caller. The token is empty when no secret is
// configured.
func (s *service) Login(ctx context.Context, username, password string) (string, User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
		zap.String("username", username),
	)

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Error("failed to look up user", zap.Error(err))
			return "", User{}, err
		}
		log.Info("unknown username")
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		log.Info("password mismatch")
		return "", User{}, ErrInvalidCredentials
	}

	if s.jwtSecret == "" {
		log.Warn("JWT_SECRET not set, issuing no token")
		return "", u, nil
	}

	token, err := GenerateJWT(s.jwtSecret, u, s.now())
	if err != nil {
		log.Error("failed to generate jwt", zap.Error(err))
		return "", User{}, err
	}

	log.Info("login success", zap.Int64("user_id", u.ID), zap.String("role", string(u.Role())))
	return token, u, nil
}

func (s *service) Register(ctx context.Context, username, password string, isAdmin bool) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, errors.New("username and password required")
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return User{}, err
	}

	return s.repo.Create(ctx, username, hashed, isAdmin)
}
