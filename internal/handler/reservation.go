package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hotelmercedes/booking-api/internal/middleware"
	"github.com/hotelmercedes/booking-api/internal/model"
	"github.com/hotelmercedes/booking-api/internal/service"
)

// ReservationHandler handles HTTP requests for reservations.
type ReservationHandler struct {
	service *service.ReservationService
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: svc}
}

// HandleCreate handles POST /api/v1/reservations requests.
func (h *ReservationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateReservationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields),
			errors.Is(err, service.ErrUnknownRoomCategory),
			errors.Is(err, service.ErrInvalidDate),
			errors.Is(err, service.ErrNonPositiveFields):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			slog.Error("create reservation failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/v1/my-reservations requests. Administrators
// get every reservation; customers get their own.
func (h *ReservationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())

	reservations, err := h.service.List(r.Context(), userID, role)
	if err != nil {
		slog.Error("list reservations failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, reservations)
}
