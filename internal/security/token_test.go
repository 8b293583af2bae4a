package security

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("test-secret", "user-1", "customer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	claims, err := ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseToken() error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, expected user-1", claims.UserID)
	}
	if claims.Role != "customer" {
		t.Errorf("Role = %q, expected customer", claims.Role)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Error("expiry should be at most one hour out")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("right-secret", "user-1", "customer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	if _, err := ParseToken(token, "wrong-secret"); err == nil {
		t.Error("expected error for wrong secret, got nil")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("test-secret", "user-1", "customer", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	if _, err := ParseToken(token, "test-secret"); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("not-a-jwt", "test-secret"); err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

func TestDenylistKey(t *testing.T) {
	key1 := DenylistKey("token-a")
	key2 := DenylistKey("token-b")

	if !strings.HasPrefix(key1, "portal:revoked:") {
		t.Errorf("key %q missing namespace prefix", key1)
	}
	if key1 == key2 {
		t.Error("distinct tokens must map to distinct keys")
	}
	if strings.Contains(key1, "token-a") {
		t.Error("raw token must not appear in the cache key")
	}
	if key1 != DenylistKey("token-a") {
		t.Error("key derivation must be deterministic")
	}
}
