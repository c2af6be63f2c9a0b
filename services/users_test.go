package services_test

import (
	"testing"

	"github.com/volunteerhub/volunteerhub-api/services"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := &services.UsersService{DB: db}

	user, err := svc.Register("Alice", "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Duplicate email is a conflict
	if _, err := svc.Register("Alice Again", "alice@example.com", "hunter22"); !services.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate email, got %v", err)
	}

	found, err := svc.FindByLogin("alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("FindByLogin failed: %v", err)
	}
	if found == nil || found.ID != user.ID {
		t.Fatal("expected to find the registered user by login")
	}

	wrong, err := svc.FindByLogin("alice@example.com", "wrong-password")
	if err != nil {
		t.Fatalf("FindByLogin failed: %v", err)
	}
	if wrong != nil {
		t.Fatal("expected nil for a wrong password")
	}
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := &services.UsersService{DB: db}
	user := createTestUser(t, db, "Alice", "alice@example.com")

	updated, err := svc.UpdateProfile(user.ID, services.ProfileUpdate{
		Name:  "Alice W.",
		Image: "https://cdn.example.com/alice.png",
		Bio:   "I like helping out",
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.Name != "Alice W." || !updated.Image.Valid || updated.Bio != "I like helping out" {
		t.Fatalf("unexpected profile after update: %+v", updated)
	}

	if _, err := svc.UpdateProfile(user.ID, services.ProfileUpdate{}); !services.IsValidation(err) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}
	if _, err := svc.UpdateProfile("missing-user", services.ProfileUpdate{Name: "X"}); !services.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
