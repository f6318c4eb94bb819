package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-workflow/utils"
)

// AuthMiddleware validates the bearer token and sets userID/role on the
// request context. Authorization policy itself lives in RoleCheck.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, utils.NewAuthorizationError("authorization header missing"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, utils.NewAuthorizationError("invalid or expired token"))
			c.Abort()
			return
		}
		if claims.UserID == "" {
			utils.RespondError(c, utils.NewAuthorizationError("invalid user ID in token"))
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
