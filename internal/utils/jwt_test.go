package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := "0192f0a4-7c1e-7c3a-9a52-1f6f3c2b9d10"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != userID {
		t.Errorf("expected subject %s, got %s", userID, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u", time.Hour, "key"},
		{"empty user", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "u", 0, "key"},
		{"empty key", "iss", "u", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := "user-456"
	key := "secret-key"

	genToken, _ := GenerateJWTToken(issuer, userID, 5*time.Minute, key)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %s, got %s", userID, parsedToken.UserID)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "u", time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "u", -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "u", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc", "abc", false},
		{"bearer abc", "abc", false},
		{"  Bearer abc  ", "abc", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"", "", true},
		{"Bearer a b", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.header)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%q: got %q, %v", tt.header, got, err)
		}
	}
}
