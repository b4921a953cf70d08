package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetkeeper/internal/middleware"
	"fleetkeeper/internal/models"
	"fleetkeeper/internal/store"
)

type AssignmentController struct {
	Store     store.FleetStore
	Dashboard *DashboardController
}

type createAssignmentInput struct {
	VehicleID string     `json:"vehicle_id" binding:"required"`
	DriverID  uint       `json:"driver_id" binding:"required"`
	StartDate *time.Time `json:"start_date"`
}

// CreateAssignment links a driver to a vehicle. Admin only.
func (ac *AssignmentController) CreateAssignment(c *gin.Context) {
	var input createAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := ac.Store.GetVehicle(c.Request.Context(), input.VehicleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown vehicle_id"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	now := time.Now()
	start := now
	if input.StartDate != nil {
		start = *input.StartDate
	}
	assignment := models.Assignment{
		ID:        models.NewID("ASG"),
		VehicleID: input.VehicleID,
		DriverID:  input.DriverID,
		StartDate: start,
		CreatedAt: now,
	}

	if err := ac.Store.CreateAssignment(c.Request.Context(), &assignment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment: " + err.Error()})
		return
	}

	go ac.Dashboard.PushRefresh()
	c.JSON(http.StatusCreated, gin.H{"assignment": assignment})
}

// EndAssignment closes an assignment as of now (or a supplied end_date).
func (ac *AssignmentController) EndAssignment(c *gin.Context) {
	var input struct {
		EndDate *time.Time `json:"end_date"`
	}
	// Body is optional; a bare request ends the assignment now.
	_ = c.ShouldBindJSON(&input)

	end := time.Now()
	if input.EndDate != nil {
		end = *input.EndDate
	}

	if err := ac.Store.EndAssignment(c.Request.Context(), c.Param("id"), end); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	go ac.Dashboard.PushRefresh()
	c.JSON(http.StatusOK, gin.H{"message": "Assignment ended"})
}

// ListAssignments returns all assignments for admins and the caller's own
// for drivers.
func (ac *AssignmentController) ListAssignments(c *gin.Context) {
	userID, role := middleware.CallerIdentity(c)

	driverFilter := uint(0)
	if role == "driver" {
		driverFilter = userID
	}
	assignments, err := ac.Store.ListAssignments(c.Request.Context(), driverFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": assignments})
}
