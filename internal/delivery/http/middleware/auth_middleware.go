package middleware

import (
	"errors"
	"net/http"
	"strings"

	"emplynix-backend/internal/delivery/http/response"
	"emplynix-backend/internal/domain"
	"emplynix-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and resolves the embedded user id
// against the store on every request. The role comes from the database, not
// the token claim, so a stale claim never grants anything.
func AuthMiddleware(tokens *auth.TokenManager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Access token required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				response.Error(c, http.StatusNotFound, "User not found", nil)
			} else {
				response.Error(c, http.StatusUnauthorized, "Unable to resolve user", nil)
			}
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}
