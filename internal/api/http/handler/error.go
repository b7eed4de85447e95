package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/userauth-server/internal/apierrors"
	"github.com/dtroode/userauth-server/internal/model"
)

// handleError maps an error to an HTTP status and a message body.
// Unexpected faults surface as a generic 500; the cause is logged by
// the caller, never echoed to the client.
func handleError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.HTTPCode, gin.H{"msg": apiErr.Message})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal server error"})
}
