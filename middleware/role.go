package middleware

import (
	"net/http"
	"strings"

	"caregrid/models"
	"caregrid/utils"

	"github.com/gin-gonic/gin"
)

// RequireRoles allows the request through only when the authenticated caller
// holds one of the given roles. Must run after JWTAuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		utils.AbortJSONError(c, http.StatusForbidden, "INSUFFICIENT_ROLE",
			"Requires one of roles: "+strings.Join(roles, ", "))
	}
}

// CurrentActor returns the authenticated caller set by JWTAuthMiddleware.
func CurrentActor(c *gin.Context) models.Actor {
	return models.Actor{
		UserID: c.GetString("userID"),
		Role:   c.GetString("role"),
	}
}
