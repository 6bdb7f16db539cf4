package jwt

import (
	"testing"
	"time"

	"clinic-scheduler/config"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := Claims{
		ActorID:   "staff-7",
		ActorName: "Front Desk",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestValidateToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: testSecret})

	claims, err := svc.ValidateToken(signToken(t, testSecret, time.Now().Add(time.Hour)))
	if err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if claims.ActorID != "staff-7" || claims.ActorName != "Front Desk" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: testSecret})

	if _, err := svc.ValidateToken(signToken(t, "other-secret", time.Now().Add(time.Hour))); err == nil {
		t.Errorf("token signed with a different secret was accepted")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: testSecret})

	if _, err := svc.ValidateToken(signToken(t, testSecret, time.Now().Add(-time.Minute))); err == nil {
		t.Errorf("expired token was accepted")
	}
}
