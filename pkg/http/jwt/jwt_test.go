package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key"

func TestGenToken_ParseToken(t *testing.T) {
	aToken, rToken, err := GenToken("user-1", []byte(testSecret), 30, 60)
	if err != nil {
		t.Fatalf("GenToken failed: %v", err)
	}
	if aToken == "" || rToken == "" {
		t.Fatal("expected non-empty token pair")
	}

	claims, err := ParseToken(aToken, testSecret)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserId != "user-1" {
		t.Errorf("expected user-1, got %s", claims.UserId)
	}
	if claims.Issuer != "staffly" {
		t.Errorf("unexpected issuer: %s", claims.Issuer)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	aToken, _, err := GenToken("user-1", []byte(testSecret), 30, 60)
	if err != nil {
		t.Fatalf("GenToken failed: %v", err)
	}

	if _, err := ParseToken(aToken, "another-secret"); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	claims := &AuthClaims{
		UserId: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "staffly",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := ParseToken(expired, testSecret); err != jwt.ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}
