package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/userauth-server/internal/logger"
	"github.com/dtroode/userauth-server/internal/model"
)

// UserService defines user lookup operations.
type UserService interface {
	Get(ctx context.Context, id string) (model.User, error)
}

// User handles HTTP endpoints for user lookups.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// Get returns the user identified by the path ID. The password hash is
// excluded at serialization.
func (h *User) Get(c *gin.Context) {
	id := c.Param("id")

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("User handler: lookup failed",
			"id", id,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
