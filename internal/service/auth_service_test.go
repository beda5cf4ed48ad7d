package service

import (
	"context"
	"testing"

	"github.com/spec-kit/employee-portal/internal/config"
	apperrors "github.com/spec-kit/employee-portal/pkg/util/errorutil"
)

func newAuthServiceForTest(profiles *fakeProfileRepo) *AuthService {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            4,
		},
	}
	return NewAuthService(cfg, AuthDependencies{ProfileRepo: profiles})
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	profiles := newFakeProfileRepo()
	svc := newAuthServiceForTest(profiles)

	profile, token, _, err := svc.Register(ctx, RegisterInput{
		FullName:     "Dana Fox",
		Email:        "dana@example.com",
		EmployeeCode: "E-100",
		Password:     "s3cret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if profile.ID == "" || token == "" {
		t.Fatalf("expected profile id and token, got %q / %q", profile.ID, token)
	}

	t.Run("duplicate email conflicts", func(t *testing.T) {
		if _, _, _, err := svc.Register(ctx, RegisterInput{
			FullName:     "Other Dana",
			Email:        "dana@example.com",
			EmployeeCode: "E-101",
			Password:     "s3cret",
		}); !apperrors.IsState(err) {
			t.Fatalf("expected conflict for duplicate email, got %v", err)
		}
	})

	t.Run("valid credentials", func(t *testing.T) {
		logged, token, _, err := svc.Login(ctx, "dana@example.com", "s3cret")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if logged.ID != profile.ID || token == "" {
			t.Fatalf("expected profile %s with token, got %s / %q", profile.ID, logged.ID, token)
		}
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		if _, _, _, err := svc.Login(ctx, "dana@example.com", "wrong"); !apperrors.IsUnauthorized(err) {
			t.Fatalf("expected unauthorized error, got %v", err)
		}
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		if _, _, _, err := svc.Login(ctx, "nobody@example.com", "s3cret"); !apperrors.IsUnauthorized(err) {
			t.Fatalf("expected unauthorized error, got %v", err)
		}
	})
}
