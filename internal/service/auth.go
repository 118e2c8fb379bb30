package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hotelmercedes/booking-api/internal/crypto"
	"github.com/hotelmercedes/booking-api/internal/model"
	"github.com/hotelmercedes/booking-api/internal/repository"
)

const minPasswordLength = 6

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrInvalidQuestion    = errors.New("unknown security question")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// UserStore is the persistence surface the user-facing services need.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.UserResponse, error)
	Update(ctx context.Context, id int64, name, email string, role model.Role) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

// AuthService handles registration and login.
type AuthService struct {
	store      UserStore
	jwtSecret  string
	sessionTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		store:      store,
		jwtSecret:  secret,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new customer account. The password and the security
// answer are hashed independently, each with its own random salt.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.SecurityQuestion == "" || req.SecurityAnswer == "" {
		return model.RegisterResponse{}, ErrMissingFields
	}
	if len(req.Password) < minPasswordLength {
		return model.RegisterResponse{}, ErrPasswordTooShort
	}
	if !model.ValidSecurityQuestion(req.SecurityQuestion) {
		return model.RegisterResponse{}, ErrInvalidQuestion
	}

	passwordHash, err := crypto.HashSecret(req.Password)
	if err != nil {
		return model.RegisterResponse{}, err
	}
	answerHash, err := crypto.HashSecret(req.SecurityAnswer)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	user := &model.User{
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     passwordHash,
		Role:             model.RoleCustomer,
		SecurityQuestion: req.SecurityQuestion,
		AnswerHash:       answerHash,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.RegisterResponse{}, ErrEmailTaken
		}
		return model.RegisterResponse{}, err
	}

	return model.RegisterResponse{
		Message: "user registered successfully",
		UserID:  user.ID,
	}, nil
}

// Login authenticates a user and issues a session token. Unknown email
// and wrong password return the same error so neither is disclosed.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return model.LoginResponse{}, ErrMissingFields
	}

	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	match, err := crypto.VerifySecret(req.Password, user.PasswordHash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !match {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateSessionToken(user.ID, user.Role, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		Message: fmt.Sprintf("welcome, %s!", user.Name),
		Token:   token,
		Name:    user.Name,
		Role:    user.Role,
	}, nil
}
