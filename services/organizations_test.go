package services_test

import (
	"testing"

	"github.com/volunteerhub/volunteerhub-api/models"
	"github.com/volunteerhub/volunteerhub-api/services"
)

func TestOrganizationsCreateAndList(t *testing.T) {
	db := newTestDB(t)
	svc := &services.OrganizationsService{DB: db}
	u := createTestUser(t, db, "Uma", "uma@example.com")
	other := createTestUser(t, db, "Oscar", "oscar@example.com")

	if _, err := svc.Create(u.ID, services.OrganizationInput{}); !services.IsValidation(err) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}

	mine, err := svc.Create(u.ID, services.OrganizationInput{Name: "Helping Hands"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	theirs, err := svc.Create(other.ID, services.OrganizationInput{Name: "Food Bank"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	byCreator, err := svc.ListByCreator(u.ID)
	if err != nil {
		t.Fatalf("ListByCreator failed: %v", err)
	}
	if len(byCreator) != 1 || byCreator[0].ID != mine.ID {
		t.Fatalf("expected only Uma's organization, got %d", len(byCreator))
	}

	others, err := svc.ListOthers(u.ID)
	if err != nil {
		t.Fatalf("ListOthers failed: %v", err)
	}
	if len(others) != 1 || others[0].ID != theirs.ID {
		t.Fatalf("expected only Oscar's organization, got %d", len(others))
	}
}

func TestOrganizationDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	orgs := &services.OrganizationsService{DB: db}
	conversations := &services.ConversationsService{DB: db}
	listings := &services.ListingsService{DB: db, Guard: conversations}

	u := createTestUser(t, db, "Uma", "uma@example.com")
	other := createTestUser(t, db, "Oscar", "oscar@example.com")
	org := createTestOrganization(t, db, u.ID, "Helping Hands")

	// The organization participates in a conversation and has sent a message
	conversation, err := conversations.CreateConversation("Partnership", []services.ParticipantRef{
		orgRef(org.ID),
		userRef(other.ID),
	})
	if err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}
	if _, err := conversations.SendMessage(u.ID, conversation.ID, orgRef(org.ID), "hi", models.MessageTypeText); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	// It also posted a listing with a signup
	listing, err := listings.Create(u.ID, org.ID, services.ListingInput{
		Name:        "Cleanup day",
		Description: "Beach cleanup",
	})
	if err != nil {
		t.Fatalf("listing Create failed: %v", err)
	}
	if _, err := listings.SignUp(other.ID, listing.ID); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	// Only the creator may delete
	if err := orgs.Delete(other.ID, org.ID); !services.IsAuthorization(err) {
		t.Fatalf("expected authorization error, got %v", err)
	}

	if err := orgs.Delete(u.ID, org.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// All dependent rows are gone
	var count int64
	db.Model(&models.Participant{}).Where("organization_id = ?", org.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected no participant rows, got %d", count)
	}
	db.Model(&models.Message{}).Where("sender_organization_id = ?", org.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected no message rows, got %d", count)
	}
	db.Model(&models.Listing{}).Where("organization_id = ?", org.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected no listings, got %d", count)
	}
	db.Model(&models.ListingSignup{}).Where("listing_id = ?", listing.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected no signups, got %d", count)
	}

	// The other participant's user row is untouched
	db.Model(&models.Participant{}).Where("user_id = ?", other.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected Oscar's membership to survive, got %d rows", count)
	}
}
