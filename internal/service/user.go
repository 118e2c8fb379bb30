package service

import (
	"context"
	"errors"

	"github.com/hotelmercedes/booking-api/internal/model"
	"github.com/hotelmercedes/booking-api/internal/repository"
)

var (
	ErrInvalidRole  = errors.New("role must be customer or administrator")
	ErrUserNotFound = errors.New("user not found")
)

// UserService handles the admin user-management operations.
type UserService struct {
	store UserStore
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// List returns every user's id, name, email, and role.
func (s *UserService) List(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.UserResponse{}
	}
	return users, nil
}

// Update overwrites a user's name, email, and role.
func (s *UserService) Update(ctx context.Context, id int64, req model.UpdateUserRequest) error {
	if req.Name == "" || req.Email == "" || req.Role == "" {
		return ErrMissingFields
	}
	if !req.Role.Valid() {
		return ErrInvalidRole
	}

	if err := s.store.Update(ctx, id, req.Name, req.Email, req.Role); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// Delete removes a user and, first, all of their reservations. The store
// runs both deletes in one transaction.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
