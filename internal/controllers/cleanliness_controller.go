package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetkeeper/internal/middleware"
	"fleetkeeper/internal/models"
	"fleetkeeper/internal/store"
)

type CleanlinessController struct {
	Store store.FleetStore
}

type createCleanlinessInput struct {
	VehicleID string     `json:"vehicle_id" binding:"required"`
	Rating    int        `json:"rating" binding:"required,min=1,max=5"`
	Date      *time.Time `json:"date"`
	Notes     string     `json:"notes"`
}

func (cc *CleanlinessController) CreateCleanlinessLog(c *gin.Context) {
	var input createCleanlinessInput
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

	log := models.CleanlinessLog{
		ID:        models.NewID("CLN"),
		VehicleID: input.VehicleID,
		DriverID:  userID,
		Date:      date,
		Rating:    input.Rating,
		Notes:     input.Notes,
		CreatedAt: now,
	}
	if err := cc.Store.CreateCleanlinessLog(c.Request.Context(), &log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cleanliness log: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"log": log})
}

// ListCleanlinessLogs returns ratings, optionally filtered by ?vehicle_id=.
// Drivers only see logs for their actively assigned vehicles.
func (cc *CleanlinessController) ListCleanlinessLogs(c *gin.Context) {
	userID, role := middleware.CallerIdentity(c)
	allowed, unrestricted, err := permittedVehicleIDs(c.Request.Context(), cc.Store, userID, role, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logs, err := cc.Store.ListCleanlinessLogs(c.Request.Context(), c.Query("vehicle_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logs = scopeRecords(logs, allowed, unrestricted, func(l models.CleanlinessLog) string { return l.VehicleID })
	c.JSON(http.StatusOK, gin.H{"data": logs})
}
