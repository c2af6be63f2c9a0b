package services_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/volunteerhub/volunteerhub-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// An in-memory SQLite database exists per connection, so the pool must
	// be pinned to a single one
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.Conversation{},
		&models.Participant{},
		&models.Message{},
		&models.Listing{},
		&models.ListingSignup{},
		&models.Skill{},
		&models.VolunteerSkill{},
		&models.ListingSkill{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:        name,
		Email:       email,
		CreatedDate: time.Now().UTC(),
	}
	user.SetPassword("password123")
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return &user
}

func createTestOrganization(t *testing.T, db *gorm.DB, creatorID, name string) *models.Organization {
	t.Helper()
	organization := models.Organization{
		CreatorID:   creatorID,
		Name:        name,
		CreatedDate: time.Now().UTC(),
	}
	if err := db.Create(&organization).Error; err != nil {
		t.Fatalf("failed to create organization %s: %v", name, err)
	}
	return &organization
}

// publishedEvent records one call to the fake notifier
type publishedEvent struct {
	Topic   string
	Event   string
	Payload interface{}
}

// fakeNotifier captures realtime publishes so tests can assert the fan-out
// without a socket server
type fakeNotifier struct {
	mu        sync.Mutex
	published []publishedEvent
	fail      bool
}

func (f *fakeNotifier) Publish(conversationID string, event string, payload interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("notifier is down")
	}
	f.published = append(f.published, publishedEvent{
		Topic:   conversationID,
		Event:   event,
		Payload: payload,
	})
	return nil
}

// waitForPublished polls until the notifier has captured n events, since
// the publish happens on a separate goroutine
func (f *fakeNotifier) waitForPublished(t *testing.T, n int) []publishedEvent {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		f.mu.Lock()
		count := len(f.published)
		f.mu.Unlock()
		if count >= n {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.published) < n {
		t.Fatalf("expected %d published events, got %d", n, len(f.published))
	}
	events := make([]publishedEvent, len(f.published))
	copy(events, f.published)
	return events
}
