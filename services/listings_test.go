package services_test

import (
	"testing"

	"github.com/volunteerhub/volunteerhub-api/services"
)

func TestListingCreateRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	conversations := &services.ConversationsService{DB: db}
	listings := &services.ListingsService{DB: db, Guard: conversations}

	u := createTestUser(t, db, "Uma", "uma@example.com")
	other := createTestUser(t, db, "Oscar", "oscar@example.com")
	org := createTestOrganization(t, db, u.ID, "Helping Hands")

	_, err := listings.Create(other.ID, org.ID, services.ListingInput{
		Name:        "Cleanup day",
		Description: "Beach cleanup",
	})
	if !services.IsAuthorization(err) {
		t.Fatalf("expected authorization error, got %v", err)
	}

	listing, err := listings.Create(u.ID, org.ID, services.ListingInput{
		Name:        "Cleanup day",
		Description: "Beach cleanup",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if listing.OrganizationID != org.ID {
		t.Fatalf("expected listing under %s, got %s", org.ID, listing.OrganizationID)
	}
}

func TestListingSignupConflicts(t *testing.T) {
	db := newTestDB(t)
	conversations := &services.ConversationsService{DB: db}
	listings := &services.ListingsService{DB: db, Guard: conversations}

	u := createTestUser(t, db, "Uma", "uma@example.com")
	volunteer := createTestUser(t, db, "Vera", "vera@example.com")
	org := createTestOrganization(t, db, u.ID, "Helping Hands")

	listing, err := listings.Create(u.ID, org.ID, services.ListingInput{
		Name:        "Cleanup day",
		Description: "Beach cleanup",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := listings.SignUp(volunteer.ID, listing.ID); err != nil {
		t.Fatalf("first SignUp failed: %v", err)
	}
	if _, err := listings.SignUp(volunteer.ID, listing.ID); !services.IsConflict(err) {
		t.Fatalf("expected conflict on double signup, got %v", err)
	}
	if _, err := listings.SignUp(volunteer.ID, "missing-listing"); !services.IsNotFound(err) {
		t.Fatalf("expected not found for unknown listing, got %v", err)
	}
}
