package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"

	"fleetkeeper/internal/fleet"
	"fleetkeeper/internal/middleware"
	"fleetkeeper/internal/socket"
	"fleetkeeper/internal/store"
)

// DashboardController serves the service-due and notification views. The
// clock is injectable so staleness behavior is testable; it defaults to the
// wall clock.
type DashboardController struct {
	Store            store.FleetStore
	Hub              *socket.Hub
	Catalog          []fleet.ServiceInterval
	WarningThreshold int64
	Clock            clockz.Clock
}

func (dc *DashboardController) getClock() clockz.Clock {
	if dc.Clock != nil {
		return dc.Clock
	}
	return clockz.RealClock
}

// VehicleServiceStatus returns the six-entry service catalog evaluation for
// one vehicle.
func (dc *DashboardController) VehicleServiceStatus(c *gin.Context) {
	ctx := c.Request.Context()

	vehicle, err := dc.Store.GetVehicle(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	logs, err := dc.Store.ListOdometerLogs(ctx, vehicle.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	maint, err := dc.Store.ListMaintenance(ctx, vehicle.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	checks, err := dc.Store.ListWeeklyChecks(ctx, vehicle.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	current, known := fleet.ResolveOdometer(vehicle, logs, maint, checks)
	statuses := fleet.ComputeServiceStatuses(vehicle.ID, current, known, maint, dc.Catalog, dc.WarningThreshold)

	resp := gin.H{
		"vehicle":          vehicle,
		"odometer_known":   known,
		"service_statuses": statuses,
	}
	if known {
		resp["current_odometer"] = current
	}
	c.JSON(http.StatusOK, resp)
}

// Notifications returns the prioritized alert list scoped to the caller.
// Previously dismissed alert ids arrive as ?dismissed=id1,id2 and are
// session state only; nothing is persisted here.
func (dc *DashboardController) Notifications(c *gin.Context) {
	userID, role := middleware.CallerIdentity(c)

	dismissed := make(map[string]bool)
	if raw := c.Query("dismissed"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			dismissed[strings.TrimSpace(id)] = true
		}
	}

	alerts, err := dc.BuildFor(c.Request.Context(), role, userID, dismissed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": alerts})
}

// BuildFor fetches every collection the aggregator needs and runs it for
// the given caller.
func (dc *DashboardController) BuildFor(ctx context.Context, role string, driverID uint, dismissed map[string]bool) ([]fleet.Notification, error) {
	vehicles, err := dc.Store.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	maint, err := dc.Store.ListMaintenance(ctx, "")
	if err != nil {
		return nil, err
	}
	logs, err := dc.Store.ListOdometerLogs(ctx, "")
	if err != nil {
		return nil, err
	}
	checks, err := dc.Store.ListWeeklyChecks(ctx, "")
	if err != nil {
		return nil, err
	}
	assignments, err := dc.Store.ListAssignments(ctx, 0)
	if err != nil {
		return nil, err
	}

	return fleet.BuildNotifications(fleet.NotificationInput{
		Vehicles:         vehicles,
		Maintenance:      maint,
		OdometerLogs:     logs,
		WeeklyChecks:     checks,
		Assignments:      assignments,
		Role:             role,
		DriverID:         driverID,
		Catalog:          dc.Catalog,
		WarningThreshold: dc.WarningThreshold,
		Dismissed:        dismissed,
		Now:              dc.getClock().Now(),
	}), nil
}

// PushRefresh recomputes the admin-scope alert list and broadcasts it to
// every connected dashboard client. Called after record mutations.
func (dc *DashboardController) PushRefresh() {
	if dc == nil || dc.Hub == nil {
		return
	}
	alerts, err := dc.BuildFor(context.Background(), "admin", 0, nil)
	if err != nil {
		logrus.WithError(err).Error("failed to rebuild notifications for push")
		return
	}
	dc.Hub.Broadcast(gin.H{"type": "notifications", "data": alerts})
}
