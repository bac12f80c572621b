package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/deniz/campuscare/internal/app/models"
)

func newTestService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "campuscare.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)
	user := &models.User{ID: 7, Username: "student1", Role: models.RoleStudent}

	access, refresh, expiresIn, _, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if refresh == "" {
		t.Fatalf("expected non-empty refresh token")
	}
	if expiresIn != int(time.Hour.Seconds()) {
		t.Fatalf("unexpected expiresIn %d", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(access)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "student1" || claims.Role != string(models.RoleStudent) {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	user := &models.User{ID: 1, Username: "admin1", Role: models.RoleAdmin}
	access, _, _, _, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour})
	if _, err := other.ValidateToken(access); err == nil {
		t.Fatalf("expected validation to fail with wrong secret")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)
	user := &models.User{ID: 2, Username: "user2", Role: models.RoleNormal}
	access, _, _, _, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	if _, err := svc.ValidateToken(access); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Fatalf("unexpected result: %q %v", token, err)
	}
	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for empty header")
	}
}
