package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-signing-secret-32-chars!!"

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	user := &User{ID: 42, Nivel: RoleGerente}

	token, err := GenerateAccessToken(user, testSecret, 480)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID() error = %v", err)
	}
	if id != 42 {
		t.Errorf("subject = %d, want 42", id)
	}
	if claims.Nivel != RoleGerente {
		t.Errorf("nivel = %q, want %q", claims.Nivel, RoleGerente)
	}
}

func TestGenerateAccessToken_DefaultTTL(t *testing.T) {
	user := &User{ID: 1, Nivel: RoleAdmin}

	token, err := GenerateAccessToken(user, testSecret, 0)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	// Default lifetime is 8 hours
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != 8*time.Hour {
		t.Errorf("token lifetime = %v, want 8h", lifetime)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	user := &User{ID: 1, Nivel: RoleVendedor}

	token, err := GenerateAccessToken(user, testSecret, 60)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	_, err = ParseToken(token, "another-secret-that-is-also-32ch!!")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ParseToken() with wrong secret error = %v, want ErrTokenInvalid", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	now := time.Now()
	claims := CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		Nivel: RoleAdmin,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	_, err = ParseToken(signed, testSecret)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ParseToken() on expired token error = %v, want ErrTokenInvalid", err)
	}
}

func TestParseToken_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, testSecret)
			if !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("ParseToken(%q) error = %v, want ErrTokenInvalid", tt.token, err)
			}
		})
	}
}

func TestParseToken_MissingNivel(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "7",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	_, err = ParseToken(signed, testSecret)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ParseToken() without nivel error = %v, want ErrTokenInvalid", err)
	}
}

func TestParseToken_RejectsUnsignedAlgorithm(t *testing.T) {
	// alg=none tokens must never validate
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "7"},
		Nivel:            RoleAdmin,
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("building alg=none token: %v", err)
	}

	if _, err := ParseToken(token, testSecret); err == nil {
		t.Error("ParseToken() should reject alg=none tokens")
	}
}
