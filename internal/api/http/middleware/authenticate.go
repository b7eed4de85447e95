package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/userauth-server/internal/apierrors"
	"github.com/dtroode/userauth-server/internal/logger"
	"github.com/dtroode/userauth-server/internal/model"
)

// TokenVerifier resolves user IDs from bearer tokens.
type TokenVerifier interface {
	Parse(token string) (string, error)
}

// Authenticate validates bearer tokens and injects the user ID into
// the request context.
type Authenticate struct {
	tokens         TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenVerifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and
// stores the embedded user ID in the request context. The protected
// handlers derive the requested user from the URL; the two IDs are
// never cross-checked.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string
		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}

		if tokenString == "" {
			apiErr := apierrors.NewErrMissingAuthorizationToken()
			c.AbortWithStatusJSON(apiErr.HTTPCode, gin.H{"msg": apiErr.Message})
			return
		}

		userID, err := m.tokens.Parse(tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token verification failed",
				"error", err.Error())
			apiErr := apierrors.NewErrInvalidAuthorizationToken()
			c.AbortWithStatusJSON(apiErr.HTTPCode, gin.H{"msg": apiErr.Message})
			return
		}

		c.Request = c.Request.WithContext(m.contextManager.SetUserIDToContext(c.Request.Context(), userID))
		c.Next()
	}
}
