package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dtroode/userauth-server/internal/apierrors"
	"github.com/dtroode/userauth-server/internal/logger"
	"github.com/dtroode/userauth-server/internal/model"
)

type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

// Get fetches a user by its hex document ID. An unparseable ID cannot
// match any stored document and maps to not found.
func (s *User) Get(ctx context.Context, id string) (model.User, error) {
	s.logger.Debug("User service: fetching user",
		"id", id)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		s.logger.Info("User service: malformed user id",
			"id", id)
		return model.User{}, apierrors.NewErrUserNotFound()
	}

	user, err := s.userStore.GetByID(ctx, objectID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("User service: user not found",
			"id", id)
		return model.User{}, apierrors.NewErrUserNotFound()
	}
	if err != nil {
		s.logger.Error("User service: failed to get user by id",
			"id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
