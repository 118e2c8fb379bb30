package service

import (
	"context"
	"errors"
	"time"

	"github.com/hotelmercedes/booking-api/internal/crypto"
	"github.com/hotelmercedes/booking-api/internal/model"
	"github.com/hotelmercedes/booking-api/internal/repository"
)

var (
	ErrEmailNotFound     = errors.New("email not found")
	ErrWrongAnswer       = errors.New("incorrect answer")
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)

// RecoveryService implements the 3-step password recovery handshake.
// All state between steps lives in the signed reset token, never in
// server memory.
type RecoveryService struct {
	store     UserStore
	jwtSecret string
	resetTTL  time.Duration
}

// NewRecoveryService creates a new RecoveryService.
func NewRecoveryService(store UserStore, secret string, resetTTL time.Duration) *RecoveryService {
	return &RecoveryService{
		store:     store,
		jwtSecret: secret,
		resetTTL:  resetTTL,
	}
}

// FindQuestion returns the display text of the account's security question.
func (s *RecoveryService) FindQuestion(ctx context.Context, req model.FindQuestionRequest) (model.FindQuestionResponse, error) {
	if req.Email == "" {
		return model.FindQuestionResponse{}, ErrMissingFields
	}

	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.FindQuestionResponse{}, ErrEmailNotFound
		}
		return model.FindQuestionResponse{}, err
	}

	text, ok := model.SecurityQuestionText(user.SecurityQuestion)
	if !ok {
		// Registration validates question codes, so a stored unknown
		// code means corrupt data, not client error.
		return model.FindQuestionResponse{}, errors.New("stored security question unrecognized")
	}

	return model.FindQuestionResponse{Question: text}, nil
}

// VerifyAnswer compares the given answer against the stored hash and, on
// match, issues a short-lived token accepted only by ResetPassword.
func (s *RecoveryService) VerifyAnswer(ctx context.Context, req model.VerifyAnswerRequest) (model.VerifyAnswerResponse, error) {
	if req.Email == "" || req.Answer == "" {
		return model.VerifyAnswerResponse{}, ErrMissingFields
	}

	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.VerifyAnswerResponse{}, ErrEmailNotFound
		}
		return model.VerifyAnswerResponse{}, err
	}

	match, err := crypto.VerifySecret(req.Answer, user.AnswerHash)
	if err != nil {
		return model.VerifyAnswerResponse{}, err
	}
	if !match {
		return model.VerifyAnswerResponse{}, ErrWrongAnswer
	}

	token, err := crypto.GenerateResetToken(user.ID, s.jwtSecret, s.resetTTL)
	if err != nil {
		return model.VerifyAnswerResponse{}, err
	}

	return model.VerifyAnswerResponse{
		Message:    "answer verified",
		ResetToken: token,
	}, nil
}

// ResetPassword consumes a reset token and overwrites the user's password
// hash. Session tokens are rejected: only purpose-tagged reset tokens pass.
func (s *RecoveryService) ResetPassword(ctx context.Context, req model.ResetPasswordRequest) error {
	if len(req.NewPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	claims, err := crypto.ValidateToken(req.ResetToken, s.jwtSecret)
	if err != nil {
		return ErrInvalidResetToken
	}
	if claims.Purpose != crypto.PurposeReset {
		return ErrInvalidResetToken
	}

	passwordHash, err := crypto.HashSecret(req.NewPassword)
	if err != nil {
		return err
	}

	return s.store.UpdatePassword(ctx, claims.UserID, passwordHash)
}
