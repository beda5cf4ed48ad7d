package service

import (
	"context"
	"errors"
	"testing"
)

func TestIsAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("admin role present", func(t *testing.T) {
		svc := NewAuthorizationService(&fakeRoleRepo{admins: map[string]bool{"admin-1": true}})
		isAdmin, err := svc.IsAdmin(ctx, "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !isAdmin {
			t.Fatal("expected admin")
		}
	})

	t.Run("no role row means denied, not an error", func(t *testing.T) {
		svc := NewAuthorizationService(&fakeRoleRepo{})
		isAdmin, err := svc.IsAdmin(ctx, "emp-1")
		if err != nil {
			t.Fatalf("expected nil error for missing role, got %v", err)
		}
		if isAdmin {
			t.Fatal("expected non-admin")
		}
	})

	t.Run("store failure is distinguishable from denied", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		svc := NewAuthorizationService(&fakeRoleRepo{err: storeErr})
		isAdmin, err := svc.IsAdmin(ctx, "emp-1")
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error surfaced, got %v", err)
		}
		if isAdmin {
			t.Fatal("expected false alongside error")
		}
	})
}
