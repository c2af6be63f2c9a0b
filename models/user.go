package models

import (
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a volunteer profile. Users may also own organizations, which lets
// them act on the organization's behalf in conversations.
type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	Name         string
	Email        string `gorm:"index"`
	PasswordHash string
	PasswordSalt string
	Image        sql.NullString
	Bio          string
	CreatedDate  time.Time
	DeletedDate  sql.NullTime
}

// BeforeCreate assigns a UUID identifier if the caller didn't provide one
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// SetPassword hashes the provided password with a fresh salt
func (u *User) SetPassword(password string) {
	salt := uuid.New().String()
	u.PasswordSalt = salt
	u.PasswordHash = hashPassword(password, salt)
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	hashed := hashPassword(password, u.PasswordSalt)
	return subtle.ConstantTimeCompare(
		[]byte(hashed),
		[]byte(u.PasswordHash),
	) == 1
}

func hashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + ":" + password))
	return hex.EncodeToString(sum[:])
}
