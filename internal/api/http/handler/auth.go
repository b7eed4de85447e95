package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/userauth-server/internal/apierrors"
	"github.com/dtroode/userauth-server/internal/logger"
	"github.com/dtroode/userauth-server/internal/service"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, params service.RegisterParams) error
	Login(ctx context.Context, params service.LoginParams) (string, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// validate runs the boundary presence checks, field by field.
func (r registerRequest) validate() *apierrors.APIError {
	if r.Name == "" {
		return apierrors.NewErrFieldRequired("name")
	}
	if r.Email == "" {
		return apierrors.NewErrFieldRequired("email")
	}
	if r.Password == "" {
		return apierrors.NewErrFieldRequired("password")
	}
	if r.Password != r.ConfirmPassword {
		return apierrors.NewErrPasswordsDoNotMatch()
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) validate() *apierrors.APIError {
	if r.Email == "" {
		return apierrors.NewErrFieldRequired("email")
	}
	if r.Password == "" {
		return apierrors.NewErrFieldRequired("password")
	}
	return nil
}

// Register creates a new user from name, email and password.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"msg": "invalid request body"})
		return
	}

	if apiErr := req.validate(); apiErr != nil {
		c.JSON(apiErr.HTTPCode, gin.H{"msg": apiErr.Message})
		return
	}

	err := h.authService.Register(c.Request.Context(), service.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "user created successfully"})
}

// Login authenticates a user and returns a bearer token.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"msg": "invalid request body"})
		return
	}

	if apiErr := req.validate(); apiErr != nil {
		c.JSON(apiErr.HTTPCode, gin.H{"msg": apiErr.Message})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), service.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "authentication successful", "token": token})
}
