package routes

import (
	"github.com/gin-gonic/gin"

	"fleetkeeper/internal/controllers"
	"fleetkeeper/internal/middleware"
)

// FleetRoutes exposes the record collections to any authenticated user.
// List endpoints scope by role internally; mutations open to drivers are
// the ones a driver performs in the field (readings, checks, receipts,
// cleanliness logs).
func FleetRoutes(
	r *gin.Engine,
	vehicles *controllers.VehicleController,
	maintenance *controllers.MaintenanceController,
	odometer *controllers.OdometerController,
	weeklyChecks *controllers.WeeklyCheckController,
	receipts *controllers.ReceiptController,
	cleanliness *controllers.CleanlinessController,
	assignments *controllers.AssignmentController,
) {
	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/vehicles", vehicles.ListVehicles)
		authed.GET("/vehicles/:id", vehicles.GetVehicle)

		authed.GET("/maintenance", maintenance.ListMaintenance)

		authed.GET("/odometer", odometer.ListOdometerLogs)
		authed.POST("/odometer", odometer.CreateOdometerLog)

		authed.GET("/weekly-checks", weeklyChecks.ListWeeklyChecks)
		authed.POST("/weekly-checks", weeklyChecks.CreateWeeklyCheck)

		authed.GET("/receipts", receipts.ListReceipts)
		authed.POST("/receipts", receipts.CreateReceipt)

		authed.GET("/cleanliness", cleanliness.ListCleanlinessLogs)
		authed.POST("/cleanliness", cleanliness.CreateCleanlinessLog)

		authed.GET("/assignments", assignments.ListAssignments)

		authed.GET("/drivers/me", controllers.GetMyProfile)
	}
}
