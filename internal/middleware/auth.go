package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pankajneema/curiousdevs0.1/internal/models"
	"github.com/pankajneema/curiousdevs0.1/internal/security"
)

// UserLoader is the slice of the user repository the auth middleware needs.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (models.User, error)
}

func Auth(secret string, users UserLoader, revoker security.TokenRevoker, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		revoked, err := revoker.IsRevoked(c.Request.Context(), tokenStr)
		if err != nil {
			log.Warn().Err(err).
				Str("user_id", claims.UserID).
				Msg("token denylist check failed, admitting request")
		} else if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token revoked"})
			return
		}

		// Role in the claims may lag the users table; the row wins.
		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "user not found"})
			return
		}

		c.Set("access_token", tokenStr)
		c.Set("access_claims", *claims)
		c.Set("current_user", user)

		c.Next()
	}
}

// CurrentUser pulls the authenticated user injected by Auth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("current_user")
	if !exists {
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	return user, ok
}
