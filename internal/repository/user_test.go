package repository

import (
	"errors"
	"testing"
)

func TestNewRepositories(t *testing.T) {
	userRepo := NewUserRepository(nil)
	if userRepo == nil {
		t.Fatal("expected non-nil UserRepository")
	}
	if userRepo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}

	resRepo := NewReservationRepository(nil)
	if resRepo == nil {
		t.Fatal("expected non-nil ReservationRepository")
	}
}

func TestSentinelErrors(t *testing.T) {
	if ErrUserNotFound == nil {
		t.Fatal("ErrUserNotFound should not be nil")
	}
	if ErrDuplicateEmail == nil {
		t.Fatal("ErrDuplicateEmail should not be nil")
	}
	if ErrUserNotFound.Error() != "user not found" {
		t.Fatalf("unexpected error message: %s", ErrUserNotFound.Error())
	}
	if ErrDuplicateEmail.Error() != "email already registered" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateEmail.Error())
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Fatal("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(ErrUserNotFound) {
		t.Fatal("ErrUserNotFound should not be a duplicate entry error")
	}
	if !isDuplicateEntryError(errors.New(`Error 1062 (23000): Duplicate entry 'ana@example.com' for key 'users.email'`)) {
		t.Fatal("MySQL duplicate entry error should be detected")
	}
}
