package services_test

import (
	"testing"
	"time"

	"github.com/volunteerhub/volunteerhub-api/models"
	"github.com/volunteerhub/volunteerhub-api/services"
)

func TestAuthTokensRoundTrip(t *testing.T) {
	svc := &services.AuthTokensService{SigningPepper: "test-pepper"}
	user := &models.User{ID: "user-1"}

	token, err := svc.CreateToken(user, time.Now(), time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("CreateToken failed: %v", err)
	}

	userID, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("expected subject %s, got %s", user.ID, userID)
	}
}

func TestAuthTokensRejectExpired(t *testing.T) {
	svc := &services.AuthTokensService{SigningPepper: "test-pepper"}
	user := &models.User{ID: "user-1"}

	token, err := svc.CreateToken(user, time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("CreateToken failed: %v", err)
	}
	if _, err := svc.VerifyToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestAuthTokensRejectWrongPepper(t *testing.T) {
	minting := &services.AuthTokensService{SigningPepper: "pepper-a"}
	verifying := &services.AuthTokensService{SigningPepper: "pepper-b"}
	user := &models.User{ID: "user-1"}

	token, err := minting.CreateToken(user, time.Now(), time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("CreateToken failed: %v", err)
	}
	if _, err := verifying.VerifyToken(token); err == nil {
		t.Fatal("expected token signed with a different pepper to be rejected")
	}
}
