package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-workflow/services"
)

// actorFrom reads the authenticated user set by the auth middleware.
func actorFrom(c *gin.Context) services.Actor {
	actor := services.Actor{}
	if id, ok := c.Get("userID"); ok {
		actor.ID, _ = id.(string)
	}
	if role, ok := c.Get("role"); ok {
		actor.Role, _ = role.(string)
	}
	return actor
}
