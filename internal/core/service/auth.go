package service

import (
	"context"
	"errors"
	"fmt"

	"flashcardapp/internal/core/domain"
	"flashcardapp/internal/core/model/request"
	"flashcardapp/internal/core/port"
	"flashcardapp/internal/core/telemetry"
	"flashcardapp/pkg/tracing"
)

type AuthService struct {
	repo    port.UserRepository
	hasher  port.PasswordHasher
	metrics *telemetry.AppMetrics
}

func NewAuthService(repo port.UserRepository, hasher port.PasswordHasher, metrics *telemetry.AppMetrics) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, metrics: metrics}
}

// Registration stores a new user with a hashed password. Username uniqueness is
// left to the store; a duplicate surfaces as domain.ErrConflict.
func (as *AuthService) Registration(ctx context.Context, req *request.RegisterRequest) (*domain.User, error) {
	var digest string

	err := tracing.SpanWrapper(ctx, "password.hash", nil, func(context.Context) error {
		var err error
		digest, err = as.hasher.Hash(req.Password)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("error creating encrypted password: %w", err)
	}

	user, err := as.repo.Create(ctx, domain.User{
		Username: req.Username,
		Password: digest,
	})

	if err != nil {
		return nil, err
	}

	as.metrics.RecordUserOperation(ctx, "register")

	return &user, nil
}

// Authenticate looks the user up by username and checks the password. An
// unknown username yields domain.ErrUserNotFound; a mismatch or any hashing
// failure yields domain.ErrInvalidPassword.
func (as *AuthService) Authenticate(ctx context.Context, req *request.LoginRequest) (*domain.User, error) {
	user, err := as.repo.GetByUsername(ctx, req.Username)

	if errors.Is(err, domain.ErrNotFound) {
		as.metrics.RecordUserOperation(ctx, "login_failed")
		return nil, domain.ErrUserNotFound
	}

	if err != nil {
		return nil, err
	}

	var ok bool

	err = tracing.SpanWrapper(ctx, "password.verify", nil, func(context.Context) error {
		var err error
		ok, err = as.hasher.Verify(req.Password, user.Password)
		return err
	})

	if err != nil {
		as.metrics.RecordUserOperation(ctx, "login_failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidPassword, err)
	}

	if !ok {
		as.metrics.RecordUserOperation(ctx, "login_failed")
		return nil, domain.ErrInvalidPassword
	}

	as.metrics.RecordUserOperation(ctx, "login")

	return &user, nil
}
