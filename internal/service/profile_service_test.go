package service

import (
	"context"
	"testing"

	"github.com/spec-kit/employee-portal/internal/domain"
	apperrors "github.com/spec-kit/employee-portal/pkg/util/errorutil"
)

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	profiles := newFakeProfileRepo()
	roles := &fakeRoleRepo{admins: map[string]bool{"admin-1": true}}
	svc := NewProfileService(profiles, NewAuthorizationService(roles))

	profile := &domain.Profile{FullName: "Dana Fox", Email: "dana@example.com", EmployeeCode: "E-100"}
	if err := profiles.Create(ctx, profile); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("self update", func(t *testing.T) {
		dept := "Engineering"
		updated, err := svc.UpdateProfile(ctx, profile.ID, profile.ID, domain.ProfilePatch{Department: &dept})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Department == nil || *updated.Department != "Engineering" {
			t.Fatalf("expected department set, got %v", updated.Department)
		}
		if updated.FullName != "Dana Fox" {
			t.Fatalf("untouched field changed: %s", updated.FullName)
		}
	})

	t.Run("other caller requires admin", func(t *testing.T) {
		position := "Lead"
		if _, err := svc.UpdateProfile(ctx, "emp-99", profile.ID, domain.ProfilePatch{Position: &position}); !apperrors.IsAuthorization(err) {
			t.Fatalf("expected authorization error, got %v", err)
		}
		if _, err := svc.UpdateProfile(ctx, "admin-1", profile.ID, domain.ProfilePatch{Position: &position}); err != nil {
			t.Fatalf("admin update failed: %v", err)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		blank := "   "
		if _, err := svc.UpdateProfile(ctx, profile.ID, profile.ID, domain.ProfilePatch{FullName: &blank}); !apperrors.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
