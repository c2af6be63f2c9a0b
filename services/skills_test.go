package services_test

import (
	"testing"
	"time"

	"github.com/volunteerhub/volunteerhub-api/models"
	"github.com/volunteerhub/volunteerhub-api/services"
	"gorm.io/gorm"
)

func createTestSkill(t *testing.T, db *gorm.DB, name string) *models.Skill {
	t.Helper()
	skill := models.Skill{
		Name:        name,
		IconURL:     "https://icons.example.com/" + name + ".svg",
		CreatedDate: time.Now().UTC(),
	}
	if err := db.Create(&skill).Error; err != nil {
		t.Fatalf("failed to create skill %s: %v", name, err)
	}
	return &skill
}

func TestUserSkillsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := &services.SkillsService{DB: db}
	u := createTestUser(t, db, "Vera", "vera@example.com")
	cooking := createTestSkill(t, db, "cooking")
	driving := createTestSkill(t, db, "driving")
	teaching := createTestSkill(t, db, "teaching")

	if err := svc.AddUserSkills(u.ID, []string{cooking.ID, driving.ID}); err != nil {
		t.Fatalf("AddUserSkills failed: %v", err)
	}

	// Adding an already-linked skill is skipped, not duplicated
	if err := svc.AddUserSkills(u.ID, []string{cooking.ID}); err != nil {
		t.Fatalf("re-adding skill failed: %v", err)
	}
	var count int64
	db.Model(&models.VolunteerSkill{}).Where("user_id = ?", u.ID).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 links, got %d", count)
	}

	mine, err := svc.ListForUser(u.ID)
	if err != nil {
		t.Fatalf("ListForUser failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(mine))
	}

	available, err := svc.ListAvailableForUser(u.ID)
	if err != nil {
		t.Fatalf("ListAvailableForUser failed: %v", err)
	}
	if len(available) != 1 || available[0].ID != teaching.ID {
		t.Fatalf("expected only teaching to be available, got %d", len(available))
	}

	if err := svc.RemoveUserSkills(u.ID, []string{cooking.ID}); err != nil {
		t.Fatalf("RemoveUserSkills failed: %v", err)
	}
	mine, _ = svc.ListForUser(u.ID)
	if len(mine) != 1 || mine[0].ID != driving.ID {
		t.Fatalf("expected only driving to remain, got %d", len(mine))
	}
}
