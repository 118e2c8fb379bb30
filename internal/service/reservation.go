package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hotelmercedes/booking-api/internal/model"
)

var (
	ErrUnknownRoomCategory = errors.New("unknown room category")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD format")
	ErrNonPositiveFields   = errors.New("nights, adults, and total price must be greater than zero")
)

// ReservationStore is the persistence surface the reservation service needs.
type ReservationStore interface {
	Create(ctx context.Context, res *model.Reservation) error
	ListByUser(ctx context.Context, userID int64) ([]model.ReservationResponse, error)
	ListAll(ctx context.Context) ([]model.ReservationResponse, error)
}

// ReservationService handles reservation creation and listing.
type ReservationService struct {
	store ReservationStore
}

// NewReservationService creates a new ReservationService.
func NewReservationService(store ReservationStore) *ReservationService {
	return &ReservationService{store: store}
}

// Create validates and stores a reservation owned by the authenticated
// user. Presence is checked before ranges: a count sent as an explicit
// zero is present, so zero children passes while zero nights fails the
// range check.
func (s *ReservationService) Create(ctx context.Context, userID int64, req model.CreateReservationRequest) (model.CreateReservationResponse, error) {
	if req.RoomCategory == "" || req.Date == "" ||
		req.Nights == nil || req.Adults == nil || req.Children == nil || req.TotalPrice == nil {
		return model.CreateReservationResponse{}, ErrMissingFields
	}

	categoryID, ok := model.RoomCategoryID(req.RoomCategory)
	if !ok {
		return model.CreateReservationResponse{}, ErrUnknownRoomCategory
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.CreateReservationResponse{}, ErrInvalidDate
	}

	if *req.Nights <= 0 || *req.Adults <= 0 || *req.TotalPrice <= 0 || *req.Children < 0 {
		return model.CreateReservationResponse{}, ErrNonPositiveFields
	}

	res := &model.Reservation{
		UserID:           userID,
		RoomCategoryID:   categoryID,
		ConfirmationCode: uuid.NewString(),
		Date:             date,
		Nights:           *req.Nights,
		Adults:           *req.Adults,
		Children:         *req.Children,
		TotalPrice:       *req.TotalPrice,
	}

	if err := s.store.Create(ctx, res); err != nil {
		return model.CreateReservationResponse{}, err
	}

	return model.CreateReservationResponse{
		Message:          "reservation created successfully",
		ReservationID:    res.ID,
		ConfirmationCode: res.ConfirmationCode,
	}, nil
}

// List returns the caller's reservations. Administrators see every
// reservation with the owner's name and email; customers see their own.
// Same operation, role-branched query shape.
func (s *ReservationService) List(ctx context.Context, userID int64, role model.Role) ([]model.ReservationResponse, error) {
	var (
		reservations []model.ReservationResponse
		err          error
	)

	if role == model.RoleAdministrator {
		reservations, err = s.store.ListAll(ctx)
	} else {
		reservations, err = s.store.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	if reservations == nil {
		reservations = []model.ReservationResponse{}
	}
	return reservations, nil
}
