package routes

import (
	"github.com/gin-gonic/gin"

	"fleetkeeper/internal/controllers"
	"fleetkeeper/internal/middleware"
)

func DashboardRoutes(r *gin.Engine, dashboard *controllers.DashboardController) {
	group := r.Group("/dashboard")
	group.Use(middleware.RequireAuth())
	{
		group.GET("/vehicles/:id/service-status", dashboard.VehicleServiceStatus)
		group.GET("/notifications", dashboard.Notifications)
	}
}
