package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/auth"
)

// RequireAuth guards staff-only routes. It expects an
// Authorization: Bearer <token> header signed with JWT_SECRET.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing or malformed Authorization header",
			})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		userID, email, role, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		c.Set("userID", userID)
		c.Set("email", email)
		c.Set("role", role)
		c.Next()
	}
}
