package model

import "time"

// Reservation represents a reservation row in the database.
type Reservation struct {
	ID               int64
	UserID           int64
	RoomCategoryID   int64
	ConfirmationCode string
	Date             time.Time
	Nights           int
	Adults           int
	Children         int
	TotalPrice       float64
	CreatedAt        time.Time
}

// CreateReservationRequest represents a reservation creation request.
// Numeric fields are pointers so an explicit zero is distinguishable from
// a missing field: children may legitimately be zero.
type CreateReservationRequest struct {
	RoomCategory string   `json:"roomCategory"`
	Date         string   `json:"date"`
	Nights       *int     `json:"nights"`
	Adults       *int     `json:"adults"`
	Children     *int     `json:"children"`
	TotalPrice   *float64 `json:"totalPrice"`
}

// CreateReservationResponse is returned on successful reservation creation.
type CreateReservationResponse struct {
	Message          string `json:"message"`
	ReservationID    int64  `json:"reservationId"`
	ConfirmationCode string `json:"confirmationCode"`
}

// ReservationResponse represents one row of a reservation listing. The
// owner fields are populated only for administrator listings.
type ReservationResponse struct {
	ID               int64   `json:"id"`
	ConfirmationCode string  `json:"confirmationCode"`
	Date             string  `json:"date"`
	Nights           int     `json:"nights"`
	Adults           int     `json:"adults"`
	Children         int     `json:"children"`
	TotalPrice       float64 `json:"totalPrice"`
	RoomType         string  `json:"roomType"`
	UserName         string  `json:"userName,omitempty"`
	UserEmail        string  `json:"userEmail,omitempty"`
}
