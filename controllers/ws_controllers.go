package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/dinehub/franchise-admin/realtime"
	"github.com/dinehub/franchise-admin/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// DashboardWS upgrades the connection and parks it in the hub. The server
// only pushes; inbound frames are drained to notice closes.
func DashboardWS(c *gin.Context) {
	role := c.GetString("role")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("Websocket upgrade failed: %v", err)
		return
	}

	realtime.RegisterClient(conn, role)
	utils.InfoLogger.Printf("Websocket client connected (role=%s, total=%d)", role, realtime.ClientCount())

	go func() {
		defer func() {
			realtime.UnregisterClient(conn)
			conn.Close()
			utils.InfoLogger.Printf("Websocket client disconnected (total=%d)", realtime.ClientCount())
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
