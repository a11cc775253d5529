package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-42", "driver@example.com", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	userID, role, err := ExtractIdentityFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIdentityFromToken failed: %v", err)
	}
	if userID != "user-42" {
		t.Errorf("userID = %q, want user-42", userID)
	}
	if role != "admin" {
		t.Errorf("role = %q, want admin", role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-42", "driver@example.com", "user", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, _, err := ExtractIdentityFromToken(token); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-42", "driver@example.com", "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tampered := token[:len(token)-4] + "AAAA"
	if _, _, err := ExtractIdentityFromToken(tampered); err == nil {
		t.Error("tampered token was accepted")
	}
}

func TestHashTokenIsStable(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Error("same input hashed to different values")
	}
	if a == HashToken("other-token") {
		t.Error("different inputs hashed to the same value")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
