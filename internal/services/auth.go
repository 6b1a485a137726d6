package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hitec/nhplus/internal/common"
	"github.com/hitec/nhplus/internal/cryptox"
	"github.com/hitec/nhplus/internal/logging"
	"github.com/hitec/nhplus/internal/models"
	"github.com/hitec/nhplus/internal/storage"
)

// AuthService checks and creates back office accounts.
type AuthService struct {
	users  storage.Repository[models.User]
	hasher cryptox.PasswordHasher
	log    logging.Logger
}

func NewAuthService(users storage.Repository[models.User], hasher cryptox.PasswordHasher, log logging.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, log: log}
}

// Authenticate returns the user whose email equals email exactly and whose
// stored hash matches password. A failed match, including blank input, is
// reported as ok == false with a nil error; err is set only when the users
// cannot be read.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (user *models.User, ok bool, err error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, false, nil
	}

	all, err := s.users.ReadAll(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read users", "error", err)
		return nil, false, err
	}

	for _, u := range all {
		if u.Email != email {
			continue
		}
		match, err := s.hasher.Verify(password, u.PasswordHash)
		if err != nil {
			s.log.Warn(ctx, "stored password hash unreadable", "user_id", u.ID, "error", err)
			continue
		}
		if match {
			return u, true, nil
		}
	}

	s.log.Info(ctx, "authentication failed", "email", email)
	return nil, false, nil
}

// Register stores a new user with a salted hash of password.
func (s *AuthService) Register(ctx context.Context, email, password string, status int) (*models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	u := &models.User{Email: strings.TrimSpace(email), PasswordHash: hash, Status: status}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		if errors.Is(err, common.ErrorConstraint) {
			return nil, fmt.Errorf("email %s already registered: %w", u.Email, err)
		}
		return nil, err
	}
	s.log.Info(ctx, "user registered", "user_id", created.ID)
	return created, nil
}
