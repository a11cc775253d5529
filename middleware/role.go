package middleware

import (
	"net/http"

	"smartpark/models"

	"github.com/gin-gonic/gin"
)

// AdminRoleMiddleware requires the authenticated caller's token to carry the
// admin role claim. It must be registered after JWTAuthUserMiddleware.
func AdminRoleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
