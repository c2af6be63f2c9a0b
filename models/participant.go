package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Participant links a conversation to either a user or an organization.
// Exactly one of UserID and OrganizationID is set per row. The composite
// unique indexes are the source of truth for membership uniqueness: a user or
// organization can appear at most once in a given conversation, and racing
// inserts are resolved by the database, not the application.
type Participant struct {
	ID             string         `gorm:"primaryKey;size:36"`
	ConversationID string         `gorm:"size:36;index;uniqueIndex:uniq_conversation_user;uniqueIndex:uniq_conversation_org"`
	UserID         sql.NullString `gorm:"size:36;uniqueIndex:uniq_conversation_user"`
	OrganizationID sql.NullString `gorm:"size:36;uniqueIndex:uniq_conversation_org"`
	CreatedDate    time.Time
}

func (p *Participant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
