package services

import (
	"testing"

	"github.com/landpro-backend/database"
	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/models"
)

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	setupTestDB(t)

	user, err := Register(dto.RegisterRequest{
		Email:        "pro@example.com",
		Password:     "secret123",
		BusinessName: "Smith Landscaping",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != models.RoleUser {
		t.Fatalf("expected user role, got %s", user.Role)
	}
	if user.Password == "secret123" {
		t.Fatal("expected password hashed before storage")
	}

	var profile models.Profile
	if err := database.DB.First(&profile, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("expected profile created with the account: %v", err)
	}
	if profile.BusinessName != "Smith Landscaping" {
		t.Fatalf("expected business name stored, got %q", profile.BusinessName)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	setupTestDB(t)

	req := dto.RegisterRequest{Email: "pro@example.com", Password: "secret123"}
	if _, err := Register(req); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := Register(req); err == nil {
		t.Fatal("expected duplicate email rejected")
	}
}

func TestLoginAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	setupTestDB(t)

	if _, err := Register(dto.RegisterRequest{Email: "pro@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, err := Login(dto.LoginRequest{Email: "pro@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	if resp.User.Password != "" {
		t.Fatal("expected password cleared from the response")
	}

	claims, err := ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Email != "pro@example.com" || claims.Role != "user" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := Login(dto.LoginRequest{Email: "pro@example.com", Password: "wrong"}); err == nil {
		t.Fatal("expected wrong password rejected")
	}
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected garbage token rejected")
	}
}

func TestProfileLazyCreation(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, "legacy@example.com")

	// Accounts seeded before profiles existed get one on first read.
	profile, err := GetProfile(user.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.ID != user.ID || profile.Email != user.Email {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	updated, err := UpdateProfile(user.ID, dto.UpdateProfileRequest{BusinessName: "Legacy Lawn Care"})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.BusinessName != "Legacy Lawn Care" {
		t.Fatalf("expected business name saved, got %q", updated.BusinessName)
	}
}
