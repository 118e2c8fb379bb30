package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/hotelmercedes/booking-api/internal/model"
)

const dateLayout = "2006-01-02"

// ReservationRepository handles reservation persistence operations.
type ReservationRepository struct {
	db *sql.DB
}

// NewReservationRepository creates a new ReservationRepository.
func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create inserts a new reservation and sets the generated ID.
func (r *ReservationRepository) Create(ctx context.Context, res *model.Reservation) error {
	query := `INSERT INTO reservations
		(user_id, room_category_id, confirmation_code, reservation_date, nights, adults, children, total_price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		res.UserID, res.RoomCategoryID, res.ConfirmationCode,
		res.Date.Format(dateLayout), res.Nights, res.Adults, res.Children, res.TotalPrice,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	res.ID = id
	return nil
}

// ListByUser retrieves one user's reservations joined with the room
// category name, newest date first.
func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64) ([]model.ReservationResponse, error) {
	query := `SELECT
			r.id, r.confirmation_code, r.reservation_date, r.nights, r.adults, r.children,
			r.total_price, c.name
		FROM reservations AS r
		JOIN room_categories AS c ON r.room_category_id = c.id
		WHERE r.user_id = ?
		ORDER BY r.reservation_date DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []model.ReservationResponse
	for rows.Next() {
		var res model.ReservationResponse
		var date time.Time
		if err := rows.Scan(
			&res.ID, &res.ConfirmationCode, &date, &res.Nights, &res.Adults, &res.Children,
			&res.TotalPrice, &res.RoomType,
		); err != nil {
			return nil, err
		}
		res.Date = date.Format(dateLayout)
		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}

// ListAll retrieves every reservation joined with the room category name
// and the owning user's name and email, newest date first. Admin only.
func (r *ReservationRepository) ListAll(ctx context.Context) ([]model.ReservationResponse, error) {
	query := `SELECT
			r.id, r.confirmation_code, r.reservation_date, r.nights, r.adults, r.children,
			r.total_price, c.name, u.name, u.email
		FROM reservations AS r
		JOIN room_categories AS c ON r.room_category_id = c.id
		JOIN users AS u ON r.user_id = u.id
		ORDER BY r.reservation_date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []model.ReservationResponse
	for rows.Next() {
		var res model.ReservationResponse
		var date time.Time
		if err := rows.Scan(
			&res.ID, &res.ConfirmationCode, &date, &res.Nights, &res.Adults, &res.Children,
			&res.TotalPrice, &res.RoomType, &res.UserName, &res.UserEmail,
		); err != nil {
			return nil, err
		}
		res.Date = date.Format(dateLayout)
		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}
