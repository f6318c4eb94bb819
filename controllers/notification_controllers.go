package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-workflow/services"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

// GetMyNotifications -> notifikasi milik user yang sedang login
func (nc *NotificationController) GetMyNotifications(c *gin.Context) {
	notifs, err := nc.Notifications.ListForUser(actorFrom(c).ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notifications", notifs)
}

// CreateNotification -> specific user(s) atau role cohort
func (nc *NotificationController) CreateNotification(c *gin.Context) {
	var body struct {
		UserIDs   []string    `json:"user_ids"`
		Role      string      `json:"role"`
		Type      string      `json:"type"`
		Title     string      `json:"title" binding:"required"`
		Message   string      `json:"message" binding:"required"`
		Payload   interface{} `json:"payload"`
		Priority  string      `json:"priority"`
		ExpiresAt *time.Time  `json:"expires_at"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request body: %v", err))
		return
	}
	if len(body.UserIDs) == 0 && body.Role == "" {
		utils.RespondError(c, utils.NewValidationError("either user_ids or role is required"))
		return
	}

	draft := services.Draft{
		Type:      body.Type,
		Title:     body.Title,
		Message:   body.Message,
		Payload:   body.Payload,
		Priority:  body.Priority,
		ExpiresAt: body.ExpiresAt,
	}

	var created int
	if len(body.UserIDs) > 0 {
		notifs, err := nc.Notifications.CreateForUsers(body.UserIDs, draft)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		created += len(notifs)
	}
	if body.Role != "" {
		notifs, err := nc.Notifications.CreateForRole(body.Role, draft)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		created += len(notifs)
	}

	utils.RespondJSON(c, http.StatusCreated, "Notifications created", gin.H{"count": created})
}

// MarkRead -> recipient marks one notification as read
func (nc *NotificationController) MarkRead(c *gin.Context) {
	notif, err := nc.Notifications.MarkRead(actorFrom(c).ID, c.Param("notif_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification read", notif)
}

// MarkAllRead
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	count, err := nc.Notifications.MarkAllRead(actorFrom(c).ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notifications read", gin.H{"count": count})
}

// UnreadCount
func (nc *NotificationController) UnreadCount(c *gin.Context) {
	count, err := nc.Notifications.UnreadCount(actorFrom(c).ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Unread count", gin.H{"count": count})
}
