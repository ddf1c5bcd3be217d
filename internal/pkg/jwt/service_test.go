package jwt

import (
	"errors"
	"testing"
	"time"

	"mentor-match/internal/config"
	"mentor-match/internal/domain/user"
)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:    "test-secret",
		Issuer:    "mentor-mentee-app",
		Audience:  "mentor-mentee-frontend",
		ExpiresIn: time.Hour,
	}
}

func TestHMACService_GenerateValidate_RoundTrip(t *testing.T) {
	svc := NewHMACService(testConfig())

	tok, err := svc.Generate(user.User{ID: 42, Email: "a@b.com", Name: "Alice", Role: user.RoleMentee})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user_id 42, got %d", claims.UserID)
	}
	if claims.Email != "a@b.com" || claims.Role != "mentee" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Subject != "42" {
		t.Fatalf("expected sub 42, got %q", claims.Subject)
	}
	if claims.Issuer != "mentor-mentee-app" {
		t.Fatalf("unexpected issuer: %q", claims.Issuer)
	}
	if claims.ID == "" {
		t.Fatalf("expected a jti")
	}
}

func TestHMACService_Validate_Expired(t *testing.T) {
	svc := NewHMACService(testConfig())
	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }

	tok, err := svc.Generate(user.User{ID: 1})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.Validate(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_Validate_WrongSecret(t *testing.T) {
	issuer := NewHMACService(testConfig())
	tok, err := issuer.Generate(user.User{ID: 1})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := testConfig()
	other.Secret = "different-secret"
	verifier := NewHMACService(other)
	if _, err := verifier.Validate(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_Validate_Garbage(t *testing.T) {
	svc := NewHMACService(testConfig())

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("token %q: expected ErrTokenInvalid, got %v", tok, err)
		}
	}
}

func TestHMACService_Generate_MissingSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Secret = ""
	svc := NewHMACService(cfg)

	if _, err := svc.Generate(user.User{ID: 1}); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
