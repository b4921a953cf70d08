package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"fleetkeeper/internal/middleware"
	"fleetkeeper/internal/socket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // restrict in production
	},
}

type NotificationSocketController struct {
	Hub       *socket.Hub
	Dashboard *DashboardController
}

// ServeNotifications upgrades the connection, sends the caller's current
// alert list, then keeps the client registered for pushed refreshes until
// it disconnects.
func (nc *NotificationSocketController) ServeNotifications(c *gin.Context) {
	userID, role := middleware.CallerIdentity(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("websocket upgrade failed")
		return
	}
	nc.Hub.Register(userID, conn)

	alerts, err := nc.Dashboard.BuildFor(c.Request.Context(), role, userID, nil)
	if err == nil {
		if err := nc.Hub.Send(userID, gin.H{"type": "notifications", "data": alerts}); err != nil {
			logrus.WithError(err).Warn("failed to send initial notification list")
		}
	}

	// Reads only serve to detect disconnect; clients don't send payloads.
	go func() {
		defer func() {
			nc.Hub.Unregister(userID)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
