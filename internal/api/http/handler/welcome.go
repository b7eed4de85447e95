package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Welcome serves the public root route.
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "welcome to our API"})
}
