package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	InitJWT("test-secret", 10*time.Minute)
}

func TestGenerateParseRoundtrip(t *testing.T) {
	initTestJWT(t)

	token, err := GenerateJWT("user-123")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	uid, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if uid != "user-123" {
		t.Fatalf("expected user-123 got %q", uid)
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	initTestJWT(t)

	token, err := GenerateJWT("user-123")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// flip a character in the signature segment
	tampered := token[:len(token)-2] + "xx"
	if _, err := ParseJWT(tampered); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	initTestJWT(t)

	claims := TokenClaims{
		ID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	initTestJWT(t)

	now := time.Now()
	claims := TokenClaims{
		ID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
			NotBefore: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseRejectsEmptyUserID(t *testing.T) {
	initTestJWT(t)

	// structurally valid token, semantically empty principal
	now := time.Now()
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT(token); err == nil {
		t.Fatal("expected token without user id to be rejected")
	}
}
