package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/taskguard-api/internal/models"
	appErrors "github.com/noah-isme/taskguard-api/pkg/errors"
	"github.com/noah-isme/taskguard-api/pkg/response"
)

// RequirePermission gates a route on an explicit permission grant, resolved
// against the claims' grant list. Superusers pass every check.
func RequirePermission(perms ...models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims := claimsValue.(*models.JWTClaims)

		for _, perm := range perms {
			if claims.HasPermission(perm) {
				c.Next()
				return
			}
		}

		response.Error(c, appErrors.ErrForbidden)
		c.Abort()
	}
}
