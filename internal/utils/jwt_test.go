package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
)

func TestJWTRoundTrip(t *testing.T) {
	j := NewJWTUtil("test-secret")

	tokenString, err := j.GenerateToken("user-1", "admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	token, err := j.ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if !token.Valid {
		t.Fatal("token should be valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected MapClaims")
	}
	if claims["user_id"] != "user-1" {
		t.Errorf("user_id = %v, want user-1", claims["user_id"])
	}
	if claims["role"] != "admin" {
		t.Errorf("role = %v, want admin", claims["role"])
	}
}

func TestJWTWrongSecret(t *testing.T) {
	tokenString, err := NewJWTUtil("secret-a").GenerateToken("user-1", "user")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	token, err := NewJWTUtil("secret-b").ValidateToken(tokenString)
	if err == nil && token.Valid {
		t.Error("token signed with a different secret must not validate")
	}
}

func TestGenerateOTP(t *testing.T) {
	code := GenerateOTP(6)
	if len(code) != 6 {
		t.Fatalf("code length = %d, want 6", len(code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Errorf("non-digit %q in OTP", r)
		}
	}
}

func TestGenerateCode(t *testing.T) {
	code := GenerateCode(10)
	if len(code) != 10 {
		t.Errorf("code length = %d, want 10", len(code))
	}
}
