package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-portal/internal/auth"
	"github.com/spec-kit/employee-portal/internal/config"
	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/repository"
	apperrors "github.com/spec-kit/employee-portal/pkg/util/errorutil"
)

// AuthService coordinates registration, login, and sign-out.
type AuthService struct {
	profiles   repository.ProfileRepository
	revoked    auth.RevocationList
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	ProfileRepo    repository.ProfileRepository
	RevocationList auth.RevocationList
}

// RegisterInput describes a new account payload.
type RegisterInput struct {
	FullName     string
	Email        string
	EmployeeCode string
	Password     string
	Department   *string
	Position     *string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		profiles:   deps.ProfileRepo,
		revoked:    deps.RevocationList,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new employee profile and issues a token.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.Profile, string, time.Time, error) {
	if _, err := s.profiles.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", time.Time{}, apperrors.NewStateError("email already registered", nil)
	} else if err != pgx.ErrNoRows {
		return nil, "", time.Time{}, apperrors.NewStoreError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	profile := &domain.Profile{
		EmployeeCode: input.EmployeeCode,
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hash,
		Department:   input.Department,
		Position:     input.Position,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, "", time.Time{}, apperrors.NewStoreError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(profile.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return profile, token, exp, nil
}

// Login authenticates an employee.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Profile, string, time.Time, error) {
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			// same answer for unknown email and wrong password
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.NewStoreError(err)
	}
	if err := auth.ComparePassword(profile.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(profile.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return profile, token, exp, nil
}

// SignOut revokes the presented token until its natural expiry.
func (s *AuthService) SignOut(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.revoked == nil {
		return nil
	}
	if err := s.revoked.Revoke(ctx, tokenID, expiresAt); err != nil {
		return apperrors.NewStoreError(err)
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
