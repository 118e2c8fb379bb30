package crypto

import (
	"testing"
	"time"

	"github.com/hotelmercedes/booking-api/internal/model"
)

const testSecret = "test-secret"

func TestSessionToken_CarriesUserIDAndRole(t *testing.T) {
	token, err := GenerateSessionToken(42, model.RoleAdministrator, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	claims, err := ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Role != model.RoleAdministrator {
		t.Errorf("expected administrator role, got %q", claims.Role)
	}
	if claims.Purpose != "" {
		t.Errorf("session token must carry no purpose, got %q", claims.Purpose)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateSessionToken(1, model.RoleCustomer, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	if _, err := ValidateToken(token, testSecret); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateSessionToken(1, model.RoleCustomer, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	if _, err := ValidateToken(token, "other-secret"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("not.a.jwt", testSecret); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestResetToken_PurposeTagged(t *testing.T) {
	token, err := GenerateResetToken(7, testSecret, 10*time.Minute)
	if err != nil {
		t.Fatalf("GenerateResetToken: %v", err)
	}

	claims, err := ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("expected user id 7, got %d", claims.UserID)
	}
	if claims.Purpose != PurposeReset {
		t.Errorf("expected reset purpose, got %q", claims.Purpose)
	}
	if claims.Role != "" {
		t.Errorf("reset token must carry no role, got %q", claims.Role)
	}
}
