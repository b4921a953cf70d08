package routes

import (
	"github.com/gin-contrib/cors"
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"fleetkeeper/internal/config"
	"fleetkeeper/internal/controllers"
	"fleetkeeper/internal/fleet"
	"fleetkeeper/internal/socket"
	"fleetkeeper/internal/storage"
	"fleetkeeper/internal/store"
)

// Deps carries everything the route handlers need.
type Deps struct {
	Cfg      config.Config
	Store    store.FleetStore
	Uploader *storage.Uploader
}

// SetupRouter wires middleware, controllers and route groups.
func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	hub := socket.NewHub()
	dashboard := &controllers.DashboardController{
		Store:            deps.Store,
		Hub:              hub,
		Catalog:          fleet.DefaultCatalog(),
		WarningThreshold: deps.Cfg.Fleet.WarningThreshold,
	}

	vehicles := &controllers.VehicleController{Store: deps.Store, Dashboard: dashboard}
	maintenance := &controllers.MaintenanceController{Store: deps.Store, Dashboard: dashboard}
	odometer := &controllers.OdometerController{Store: deps.Store, Dashboard: dashboard}
	weeklyChecks := &controllers.WeeklyCheckController{Store: deps.Store, Uploader: deps.Uploader, Dashboard: dashboard}
	receipts := &controllers.ReceiptController{Store: deps.Store, Uploader: deps.Uploader}
	cleanliness := &controllers.CleanlinessController{Store: deps.Store}
	assignments := &controllers.AssignmentController{Store: deps.Store, Dashboard: dashboard}
	reports := &controllers.ReportController{Dashboard: dashboard, SMTP: deps.Cfg.SMTP}
	notifSocket := &controllers.NotificationSocketController{Hub: hub, Dashboard: dashboard}

	AuthRoutes(r)
	FleetRoutes(r, vehicles, maintenance, odometer, weeklyChecks, receipts, cleanliness, assignments)
	DashboardRoutes(r, dashboard)
	AdminRoutes(r, vehicles, maintenance, assignments, reports)
	SocketRoutes(r, notifSocket)

	return r
}
