package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/hotelmercedes/booking-api/internal/model"
	"github.com/hotelmercedes/booking-api/internal/repository"
)

// fakeUserStore is an in-memory UserStore for service tests.
type fakeUserStore struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	user.ID = f.nextID
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) List(_ context.Context) ([]model.UserResponse, error) {
	var users []model.UserResponse
	for _, u := range f.users {
		users = append(users, model.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeUserStore) Update(_ context.Context, id int64, name, email string, role model.Role) error {
	for _, u := range f.users {
		if u.Email == email && u.ID != id {
			return repository.ErrDuplicateEmail
		}
	}
	u, ok := f.users[id]
	if !ok {
		return nil
	}
	u.Name, u.Email, u.Role = name, email, role
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	if u, ok := f.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

// fakeReservationStore is an in-memory ReservationStore for service tests.
type fakeReservationStore struct {
	reservations []model.Reservation
	nextID       int64
}

func (f *fakeReservationStore) Create(_ context.Context, res *model.Reservation) error {
	f.nextID++
	res.ID = f.nextID
	f.reservations = append(f.reservations, *res)
	return nil
}

func (f *fakeReservationStore) ListByUser(_ context.Context, userID int64) ([]model.ReservationResponse, error) {
	var out []model.ReservationResponse
	for _, r := range f.reservations {
		if r.UserID == userID {
			out = append(out, toResponse(r, false))
		}
	}
	return out, nil
}

func (f *fakeReservationStore) ListAll(_ context.Context) ([]model.ReservationResponse, error) {
	var out []model.ReservationResponse
	for _, r := range f.reservations {
		out = append(out, toResponse(r, true))
	}
	return out, nil
}

func toResponse(r model.Reservation, withOwner bool) model.ReservationResponse {
	resp := model.ReservationResponse{
		ID:               r.ID,
		ConfirmationCode: r.ConfirmationCode,
		Date:             r.Date.Format("2006-01-02"),
		Nights:           r.Nights,
		Adults:           r.Adults,
		Children:         r.Children,
		TotalPrice:       r.TotalPrice,
		RoomType:         fmt.Sprintf("category-%d", r.RoomCategoryID),
	}
	if withOwner {
		resp.UserName = fmt.Sprintf("user-%d", r.UserID)
		resp.UserEmail = fmt.Sprintf("user-%d@example.com", r.UserID)
	}
	return resp
}
