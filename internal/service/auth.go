package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/userauth-server/internal/apierrors"
	"github.com/dtroode/userauth-server/internal/logger"
	"github.com/dtroode/userauth-server/internal/model"
)

// RegisterParams carries validated registration input.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// LoginParams carries validated login input.
type LoginParams struct {
	Email    string
	Password string
}

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates a new user with a hashed password. The email
// uniqueness check and the insert are not atomic; concurrent
// registrations with the same email can both succeed.
func (a *Auth) Register(ctx context.Context, params RegisterParams) error {
	a.logger.Debug("Auth service: registering user",
		"email", params.Email)

	existingUser, err := a.userStore.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	if !existingUser.ID.IsZero() {
		a.logger.Info("Auth service: user already exists",
			"email", params.Email)
		return apierrors.NewErrEmailIsTaken()
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", params.Email,
			"error", err.Error())
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		Name:      params.Name,
		Email:     params.Email,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := a.userStore.Create(ctx, user); err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered successfully",
		"email", params.Email)

	return nil
}

// Login authenticates the user and issues a signed bearer token
// embedding the user ID.
func (a *Auth) Login(ctx context.Context, params LoginParams) (string, error) {
	a.logger.Debug("Auth service: logging in user",
		"email", params.Email)

	user, err := a.userStore.GetByEmail(ctx, params.Email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: user not found",
			"email", params.Email)
		return "", apierrors.NewErrUserNotFound()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.hasher.Compare(user.Password, params.Password); err != nil {
		a.logger.Info("Auth service: incorrect password",
			"email", params.Email)
		return "", apierrors.NewErrIncorrectPassword()
	}

	token, err := a.tokenManager.Generate(user.ID.Hex())
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"email", params.Email,
			"error", err.Error())
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in successfully",
		"email", params.Email)

	return token, nil
}
