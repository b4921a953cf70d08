package routes

import (
	"github.com/gin-gonic/gin"

	"fleetkeeper/internal/controllers"
	"fleetkeeper/internal/middleware"
)

func AdminRoutes(
	r *gin.Engine,
	vehicles *controllers.VehicleController,
	maintenance *controllers.MaintenanceController,
	assignments *controllers.AssignmentController,
	reports *controllers.ReportController,
) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuthWithRole("admin"))
	{
		admin.POST("/vehicles", vehicles.CreateVehicle)
		admin.PUT("/vehicles/:id", vehicles.UpdateVehicle)
		admin.DELETE("/vehicles/:id", vehicles.DeleteVehicle)

		admin.POST("/maintenance", maintenance.CreateMaintenance)
		admin.DELETE("/maintenance/:id", maintenance.DeleteMaintenance)

		admin.POST("/assignments", assignments.CreateAssignment)
		admin.PATCH("/assignments/:id/end", assignments.EndAssignment)

		admin.GET("/drivers", controllers.ListDrivers)

		admin.POST("/reports/weekly", reports.SendWeeklyReport)
	}
}
