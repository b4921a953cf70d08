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

type MaintenanceController struct {
	Store     store.FleetStore
	Dashboard *DashboardController
}

type createMaintenanceInput struct {
	VehicleID   string     `json:"vehicle_id" binding:"required"`
	Date        *time.Time `json:"date"`
	Odometer    *int64     `json:"odometer"`
	ServiceType string     `json:"service_type"`
	Cost        float64    `json:"cost"`
	Vendor      string     `json:"vendor"`
	Notes       string     `json:"notes"`
}

// CreateMaintenance appends a service history entry. The service type stays
// free text; classification happens in the interval engine.
func (mc *MaintenanceController) CreateMaintenance(c *gin.Context) {
	var input createMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := mc.Store.GetVehicle(c.Request.Context(), input.VehicleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown vehicle_id"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	now := time.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}
	record := models.MaintenanceRecord{
		ID:          models.NewID("MNT"),
		VehicleID:   input.VehicleID,
		Date:        date,
		Odometer:    input.Odometer,
		ServiceType: input.ServiceType,
		Cost:        input.Cost,
		Vendor:      input.Vendor,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := mc.Store.CreateMaintenance(c.Request.Context(), &record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create maintenance record: " + err.Error()})
		return
	}

	go mc.Dashboard.PushRefresh()
	c.JSON(http.StatusCreated, gin.H{"record": record})
}

// ListMaintenance returns history entries, optionally filtered by
// ?vehicle_id=. Unclassifiable service types appear here like any other.
// Drivers only see entries for their actively assigned vehicles.
func (mc *MaintenanceController) ListMaintenance(c *gin.Context) {
	userID, role := middleware.CallerIdentity(c)
	allowed, unrestricted, err := permittedVehicleIDs(c.Request.Context(), mc.Store, userID, role, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records, err := mc.Store.ListMaintenance(c.Request.Context(), c.Query("vehicle_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	records = scopeRecords(records, allowed, unrestricted, func(m models.MaintenanceRecord) string { return m.VehicleID })
	c.JSON(http.StatusOK, gin.H{"data": records})
}

func (mc *MaintenanceController) DeleteMaintenance(c *gin.Context) {
	if err := mc.Store.DeleteMaintenance(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	go mc.Dashboard.PushRefresh()
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted"})
}
