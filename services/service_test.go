package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/landpro-backend/database"
	"github.com/landpro-backend/lib/llm"
	"github.com/landpro-backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB swaps the global connection for an in-memory sqlite database
// scoped to one test.
func setupTestDB(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
}

func seedUser(t *testing.T, email string) models.User {
	user := models.User{Email: email, Password: "hash", Role: models.RoleUser}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedClient(t *testing.T, userID, name string) models.Client {
	client := models.Client{UserID: userID, ClientName: name, Status: models.ClientActive}
	if err := database.DB.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return client
}

// fakeLLM points a completion client at a local test server.
func fakeLLM(t *testing.T, handler http.HandlerFunc) *llm.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return llm.NewClient(server.URL, "test-key", "test-model")
}

// completionWith wraps content in a chat-completions reply body.
func completionWith(content string) string {
	return fmt.Sprintf(`{"choices":[{"message":{"content":%q}}]}`, content)
}
