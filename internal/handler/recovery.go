package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hotelmercedes/booking-api/internal/model"
	"github.com/hotelmercedes/booking-api/internal/service"
)

// RecoveryHandler handles the password recovery endpoints.
type RecoveryHandler struct {
	service *service.RecoveryService
}

// NewRecoveryHandler creates a new RecoveryHandler.
func NewRecoveryHandler(svc *service.RecoveryService) *RecoveryHandler {
	return &RecoveryHandler{service: svc}
}

// HandleFindQuestion handles POST /api/v1/recover/find-question requests.
func (h *RecoveryHandler) HandleFindQuestion(w http.ResponseWriter, r *http.Request) {
	var req model.FindQuestionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.FindQuestion(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrEmailNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			slog.Error("find question failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleVerifyAnswer handles POST /api/v1/recover/verify-answer requests.
func (h *RecoveryHandler) HandleVerifyAnswer(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyAnswerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.VerifyAnswer(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrWrongAnswer):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrEmailNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			slog.Error("verify answer failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleResetPassword handles POST /api/v1/recover/reset-password requests.
func (h *RecoveryHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.ResetPassword(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidResetToken):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			slog.Error("reset password failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("password updated successfully"))
}
