package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetkeeper/internal/middleware"
	"fleetkeeper/internal/models"
	"fleetkeeper/internal/store"
)

type OdometerController struct {
	Store     store.FleetStore
	Dashboard *DashboardController
}

type createOdometerLogInput struct {
	VehicleID string     `json:"vehicle_id" binding:"required"`
	Reading   int64      `json:"reading" binding:"required"`
	Date      *time.Time `json:"date"`
}

// CreateOdometerLog records a mileage reading for the calling driver.
func (oc *OdometerController) CreateOdometerLog(c *gin.Context) {
	var input createOdometerLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middleware.CallerIdentity(c)
	now := time.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	log := models.OdometerLog{
		ID:        models.NewID("ODO"),
		VehicleID: input.VehicleID,
		DriverID:  userID,
		Date:      date,
		Reading:   input.Reading,
		CreatedAt: now,
	}
	if err := oc.Store.CreateOdometerLog(c.Request.Context(), &log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record reading: " + err.Error()})
		return
	}

	go oc.Dashboard.PushRefresh()
	c.JSON(http.StatusCreated, gin.H{"log": log})
}

// ListOdometerLogs returns readings, optionally filtered by ?vehicle_id=.
// Drivers only see logs for their actively assigned vehicles.
func (oc *OdometerController) ListOdometerLogs(c *gin.Context) {
	userID, role := middleware.CallerIdentity(c)
	allowed, unrestricted, err := permittedVehicleIDs(c.Request.Context(), oc.Store, userID, role, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logs, err := oc.Store.ListOdometerLogs(c.Request.Context(), c.Query("vehicle_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logs = scopeRecords(logs, allowed, unrestricted, func(l models.OdometerLog) string { return l.VehicleID })
	c.JSON(http.StatusOK, gin.H{"data": logs})
}
