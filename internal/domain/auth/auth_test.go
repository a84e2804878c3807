package auth

import (
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "admin123" {
		t.Fatal("hash equals plaintext")
	}
	if err := CheckPassword(hash, "admin123"); err != nil {
		t.Fatalf("CheckPassword: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	empID := int64(7)
	claims := AccessClaims{
		UserID:     42,
		Email:      "budi@hr.com",
		Name:       "Budi",
		Role:       RoleEmployee,
		EmployeeID: &empID,
	}

	token, err := GenerateAccessToken("secret", claims, time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	parsed, err := ParseAccessToken("secret", token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if parsed.UserID != 42 || parsed.Email != "budi@hr.com" || parsed.Role != RoleEmployee {
		t.Fatalf("unexpected claims: %+v", parsed)
	}
	if parsed.EmployeeID == nil || *parsed.EmployeeID != 7 {
		t.Fatalf("unexpected employee id: %v", parsed.EmployeeID)
	}
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("secret", AccessClaims{UserID: 1}, time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := ParseAccessToken("other", token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	token, err := GenerateAccessToken("secret", AccessClaims{UserID: 1}, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := ParseAccessToken("secret", token); err == nil {
		t.Fatal("expected expiry error")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken("secret_refresh", 42, time.Hour)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	claims, err := ParseRefreshToken("secret_refresh", token)
	if err != nil {
		t.Fatalf("ParseRefreshToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("unexpected user id: %d", claims.UserID)
	}
}

func TestRefreshTokenNotValidAsAccessToken(t *testing.T) {
	token, err := GenerateRefreshToken("secret_refresh", 42, time.Hour)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	if _, err := ParseAccessToken("secret", token); err == nil {
		t.Fatal("expected error parsing refresh token with access secret")
	}
}
