package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/models"
	"github.com/volunteerhub/volunteerhub-api/services"
	v1 "github.com/volunteerhub/volunteerhub-api/v1"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
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
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	conversationsService := &services.ConversationsService{DB: db}
	api := &v1.Server{
		UsersService:         &services.UsersService{DB: db},
		OrganizationsService: &services.OrganizationsService{DB: db},
		SkillsService:        &services.SkillsService{DB: db},
		ListingsService:      &services.ListingsService{DB: db, Guard: conversationsService},
		ConversationsService: conversationsService,
		AuthTokensService:    &services.AuthTokensService{SigningPepper: "test-pepper"},
	}

	r := gin.New()
	api.Setup(r.Group("v1"))
	return r
}

func post(
	t *testing.T,
	r *gin.Engine,
	path string,
	token string,
	body interface{},
) (int, map[string]interface{}) {
	t.Helper()

	encoded, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to encode request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	decoded := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	return rec.Code, decoded
}

func register(t *testing.T, r *gin.Engine, name, email string) (id, token string) {
	t.Helper()
	status, body := post(t, r, "/v1/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "hunter22",
	})
	if status != http.StatusOK {
		t.Fatalf("register returned %d: %v", status, body)
	}
	data := body["data"].(map[string]interface{})
	return data["id"].(string), data["token"].(string)
}

func TestLoginRequiredForProtectedHooks(t *testing.T) {
	r := newTestServer(t)

	status, _ := post(t, r, "/v1/conversations/mine", "", gin.H{})
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", status)
	}
}

func TestConversationFlowOverHTTP(t *testing.T) {
	r := newTestServer(t)

	aliceID, aliceToken := register(t, r, "Alice", "alice@example.com")
	bobID, bobToken := register(t, r, "Bob", "bob@example.com")
	_, carolToken := register(t, r, "Carol", "carol@example.com")

	// Alice starts a conversation with Bob
	status, body := post(t, r, "/v1/conversations/create", aliceToken, gin.H{
		"subject": "Intro",
		"participants": []gin.H{
			{"kind": "user", "id": aliceID},
			{"kind": "user", "id": bobID},
		},
	})
	if status != http.StatusOK {
		t.Fatalf("create conversation returned %d: %v", status, body)
	}
	conversationID := body["data"].(map[string]interface{})["id"].(string)

	// Carol cannot start a conversation she doesn't participate in
	status, _ = post(t, r, "/v1/conversations/create", carolToken, gin.H{
		"subject": "Sneaky",
		"participants": []gin.H{
			{"kind": "user", "id": aliceID},
			{"kind": "user", "id": bobID},
		},
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 for stranger-created conversation, got %d", status)
	}

	// Alice sends a message
	status, body = post(t, r, "/v1/conversations/send-message", aliceToken, gin.H{
		"conversation_id": conversationID,
		"sender":          gin.H{"kind": "user", "id": aliceID},
		"content":         "Hello",
		"message_type":    0,
	})
	if status != http.StatusOK {
		t.Fatalf("send message returned %d: %v", status, body)
	}

	// Bob sees the conversation and the message
	status, body = post(t, r, "/v1/conversations/mine", bobToken, gin.H{})
	if status != http.StatusOK {
		t.Fatalf("conversations/mine returned %d: %v", status, body)
	}
	conversations := body["data"].([]interface{})
	if len(conversations) != 1 {
		t.Fatalf("expected 1 conversation for Bob, got %d", len(conversations))
	}
	first := conversations[0].(map[string]interface{})
	messages := first["messages"].([]interface{})
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}

	// Carol sees nothing
	status, body = post(t, r, "/v1/conversations/mine", carolToken, gin.H{})
	if status != http.StatusOK {
		t.Fatalf("conversations/mine returned %d: %v", status, body)
	}
	if got := body["data"].([]interface{}); len(got) != 0 {
		t.Fatalf("expected no conversations for Carol, got %d", len(got))
	}

	// Duplicate add is a conflict
	status, _ = post(t, r, "/v1/conversations/add-participant", aliceToken, gin.H{
		"conversation_id": conversationID,
		"participant":     gin.H{"kind": "user", "id": bobID},
	})
	if status != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate participant, got %d", status)
	}
}
