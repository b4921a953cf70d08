package routes

import (
	"github.com/gin-gonic/gin"

	"fleetkeeper/internal/controllers"
	"fleetkeeper/internal/middleware"
)

func SocketRoutes(r *gin.Engine, notifSocket *controllers.NotificationSocketController) {
	ws := r.Group("/ws")
	ws.Use(middleware.RequireAuth())
	{
		ws.GET("/notifications", notifSocket.ServeNotifications)
	}
}
