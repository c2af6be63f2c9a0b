package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Listing is a volunteering opportunity posted by an organization
type Listing struct {
	ID             string `gorm:"primaryKey;size:36"`
	OrganizationID string `gorm:"size:36;index"`
	Organization   *Organization
	Name           string
	Description    string
	Thumbnail      sql.NullString
	Address        sql.NullString
	CreatedDate    time.Time
	DeletedDate    sql.NullTime
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// ListingSignup records a volunteer signing up for a listing
type ListingSignup struct {
	ListingID    string `gorm:"primaryKey;size:36"`
	UserID       string `gorm:"primaryKey;size:36"`
	SignedUpDate time.Time
}
