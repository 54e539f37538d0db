package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessToken(t *testing.T) {
	const secret = "test-secret"

	access, err := NewAccessToken(secret, 42, "voter", 60)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}
	if access.Token == "" {
		t.Fatal("NewAccessToken() returned empty token")
	}

	// The expiry should be roughly one hour out.
	until := time.Until(access.Exp)
	if until < 59*time.Minute || until > 61*time.Minute {
		t.Errorf("expiry %v not within expected window", until)
	}

	// Parse the token back and confirm the claims round-trip.
	tok, err := jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if !tok.Valid {
		t.Fatal("issued token did not validate")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Errorf("sub claim = %v, want 42", claims["sub"])
	}
	if role, _ := claims["role"].(string); role != "voter" {
		t.Errorf("role claim = %v, want voter", claims["role"])
	}
}

func TestNewAccessTokenWrongSecret(t *testing.T) {
	access, err := NewAccessToken("secret-a", 7, "admin", 60)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}

	_, err = jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	if err == nil {
		t.Fatal("token signed with secret-a validated under secret-b")
	}
}
