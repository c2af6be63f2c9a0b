package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message type discriminants
const (
	MessageTypeText  = 0
	MessageTypeImage = 1
)

// Message is a single entry in a conversation, authored by either a user or
// an organization. Messages are immutable once created and are ordered by
// creation time, with the identifier as the tie-breaker.
type Message struct {
	ID                   string `gorm:"primaryKey;size:36"`
	ConversationID       string `gorm:"size:36;index"`
	SenderUserID         sql.NullString `gorm:"size:36"`
	SenderOrganizationID sql.NullString `gorm:"size:36"`
	Content              string
	MessageType          int
	CreatedDate          time.Time `gorm:"index"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
