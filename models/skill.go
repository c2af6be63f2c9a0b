package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill is a tag that volunteers can attach to their profile and listings
// can require
type Skill struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string
	IconURL     string
	CreatedDate time.Time
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// VolunteerSkill links a skill to a volunteer's profile
type VolunteerSkill struct {
	UserID  string `gorm:"primaryKey;size:36"`
	SkillID string `gorm:"primaryKey;size:36"`
}

// ListingSkill links a skill to a listing
type ListingSkill struct {
	ListingID string `gorm:"primaryKey;size:36"`
	SkillID   string `gorm:"primaryKey;size:36"`
}
