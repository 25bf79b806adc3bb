package adapters

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestIdentityService(t *testing.T) {
	t.Run("empty token resolves to the local identity", func(t *testing.T) {
		service := NewIdentityService("")
		if service.UserID() != LocalUserID {
			t.Errorf("expected %q, got %q", LocalUserID, service.UserID())
		}
	})

	t.Run("subject claim wins", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"sub": "user-42"})
		service := NewIdentityService(token)
		if service.UserID() != "user-42" {
			t.Errorf("expected user-42, got %q", service.UserID())
		}
	})

	t.Run("falls back to the user_id claim", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"user_id": "user-99"})
		service := NewIdentityService(token)
		if service.UserID() != "user-99" {
			t.Errorf("expected user-99, got %q", service.UserID())
		}
	})

	t.Run("garbage token resolves to the local identity", func(t *testing.T) {
		service := NewIdentityService("not.a.jwt")
		if service.UserID() != LocalUserID {
			t.Errorf("expected %q, got %q", LocalUserID, service.UserID())
		}
	})
}
