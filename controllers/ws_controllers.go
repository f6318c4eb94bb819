package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/yeremiapane/restaurant-workflow/realtime"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSController struct {
	Hub *realtime.Hub
}

func NewWSController(hub *realtime.Hub) *WSController {
	return &WSController{Hub: hub}
}

// Connect upgrades the request and registers the session for live events.
// Identity comes from the websocket auth middleware.
func (wc *WSController) Connect(c *gin.Context) {
	actor := actorFrom(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade: %v", err)
		return
	}

	wc.Hub.Register(conn, actor.ID, actor.Role)
	utils.InfoLogger.Printf("websocket connected: user=%s role=%s", actor.ID, actor.Role)

	// Reader loop keeps the connection alive; unregister on any error.
	go func() {
		defer wc.Hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
