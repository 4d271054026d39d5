package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/motorhaus-io/motorhaus-backend/internal/users"
	pkgAuth "github.com/motorhaus-io/motorhaus-backend/pkg/auth"
	"github.com/motorhaus-io/motorhaus-backend/pkg/config"
	"github.com/motorhaus-io/motorhaus-backend/pkg/db/models"
	pkgerrors "github.com/motorhaus-io/motorhaus-backend/pkg/errors"
	"github.com/motorhaus-io/motorhaus-backend/pkg/security"
)

// Wrong email, wrong password, and disabled account all read identically to
// the client.
func errInvalidCredentials() *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
}

// Service is what the login controller depends on.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}

type userRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
}

type service struct {
	users  userRepository
	jwtCfg config.JWTConfig
}

func NewService(repo userRepository, jwtCfg config.JWTConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	return &service{users: repo, jwtCfg: jwtCfg}, nil
}

// Login verifies the credentials, records the login time, and mints an access
// token carrying the user's id and role.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	account, err := s.verifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, account.ID, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update last login")
	}
	account.LastLoginAt = &now

	token, err := pkgAuth.MintAccessToken(s.jwtCfg, now, pkgAuth.AccessTokenPayload{
		UserID: account.ID,
		Role:   account.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	return &LoginResponse{AccessToken: token, User: users.FromModel(account)}, nil
}

func (s *service) verifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, errInvalidCredentials()
	}

	account, err := s.users.FindByEmail(ctx, normalized)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, errInvalidCredentials()
	case err != nil:
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	match, err := security.VerifyPassword(password, account.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !match || !account.IsActive {
		return nil, errInvalidCredentials()
	}
	return account, nil
}
