package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/hotelmercedes/booking-api/internal/middleware"
	"github.com/hotelmercedes/booking-api/internal/model"
	"github.com/hotelmercedes/booking-api/internal/repository"
	"github.com/hotelmercedes/booking-api/internal/service"
)

// stubUserStore holds no users, so every lookup and delete misses.
type stubUserStore struct{}

func (stubUserStore) Create(context.Context, *model.User) error { return nil }
func (stubUserStore) GetByEmail(context.Context, string) (*model.User, error) {
	return nil, repository.ErrUserNotFound
}
func (stubUserStore) List(context.Context) ([]model.UserResponse, error) { return nil, nil }
func (stubUserStore) Update(context.Context, int64, string, string, model.Role) error {
	return nil
}
func (stubUserStore) UpdatePassword(context.Context, int64, string) error { return nil }
func (stubUserStore) Delete(context.Context, int64) error {
	return repository.ErrUserNotFound
}

func adminRouter() http.Handler {
	h := NewUserHandler(service.NewUserService(stubUserStore{}))

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(testSecret))
		r.Use(middleware.RequireAdmin)
		r.Get("/api/v1/users", h.HandleList)
		r.Put("/api/v1/users/{user_id}", h.HandleUpdate)
		r.Delete("/api/v1/users/{user_id}", h.HandleDelete)
	})
	return r
}

func TestDeleteUser_NotFound(t *testing.T) {
	router := adminRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/42", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, 1, model.RoleAdministrator))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteUser_InvalidID(t *testing.T) {
	router := adminRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/abc", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, 1, model.RoleAdministrator))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestListUsers_CustomerForbidden(t *testing.T) {
	router := adminRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, 1, model.RoleCustomer))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestListUsers_EmptyArray(t *testing.T) {
	router := adminRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, 1, model.RoleAdministrator))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
