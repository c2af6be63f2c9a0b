package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization is a nonprofit or community group profile. Every organization
// has exactly one creator, and only the creator may act on its behalf.
type Organization struct {
	ID          string `gorm:"primaryKey;size:36"`
	CreatorID   string `gorm:"size:36;index"`
	Creator     *User  `gorm:"foreignKey:CreatorID"`
	Name        string
	Thumbnail   sql.NullString
	Email       sql.NullString
	Address     sql.NullString
	PhoneNumber sql.NullString
	Bio         sql.NullString
	CreatedDate time.Time
	DeletedDate sql.NullTime
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}
