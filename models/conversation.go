package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation is a message thread. It has no owner of its own; who belongs
// to it is defined entirely by its Participant rows.
type Conversation struct {
	ID          string `gorm:"primaryKey;size:36"`
	Subject     sql.NullString
	CreatedDate time.Time
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
