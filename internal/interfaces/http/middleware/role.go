package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pizzeria/backend/internal/domain/identity"
)

// RequireRoles guards a route group to the given roles. The 403 is
// rendered in place rather than redirecting, so the caller keeps its
// URL and can navigate back.
func RequireRoles(roles ...identity.Role) gin.HandlerFunc {
	allowed := make(map[identity.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role := GetJWTRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			return
		}
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "You do not have permission to access this resource",
				},
			})
			return
		}
		c.Next()
	}
}

// RequireBackOffice guards a route group to staff and admin accounts
func RequireBackOffice() gin.HandlerFunc {
	return RequireRoles(identity.RoleStaff, identity.RoleAdmin)
}

// RequireAdmin guards a route group to admin accounts
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(identity.RoleAdmin)
}
