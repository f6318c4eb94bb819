package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-workflow/models"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

// RequireRoles allows the listed roles. Admin and manager always pass, so a
// supervisor can use any interface.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, utils.NewAuthorizationError("unauthorized"))
			c.Abort()
			return
		}

		role, _ := userRole.(string)
		if models.IsSupervisorRole(role) {
			c.Next()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.RespondError(c, utils.NewAuthorizationError("role %s cannot access this resource", role))
		c.Abort()
	}
}
