package middleware

import (
	"net/http"
	"strings"

	"caregrid/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token issued by the auth service and
// puts the caller's identity and role into the gin context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.AbortJSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid Authorization header")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" || role == "" {
			utils.AbortJSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			return
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}
