package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetkeeper/internal/middleware"
	"fleetkeeper/internal/models"
	"fleetkeeper/internal/store"
)

type VehicleController struct {
	Store     store.FleetStore
	Dashboard *DashboardController
}

type createVehicleInput struct {
	Label           string `json:"label" binding:"required"`
	VIN             string `json:"vin"`
	Plate           string `json:"plate"`
	Make            string `json:"make"`
	Model           string `json:"model"`
	Year            int    `json:"year"`
	InitialOdometer *int64 `json:"initial_odometer"`
}

// CreateVehicle registers a new fleet vehicle. Admin only.
func (vc *VehicleController) CreateVehicle(c *gin.Context) {
	var input createVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle input: " + err.Error()})
		return
	}

	now := time.Now()
	vehicle := models.Vehicle{
		ID:              models.NewID("VEH"),
		Label:           input.Label,
		VIN:             input.VIN,
		Plate:           input.Plate,
		Make:            input.Make,
		VehicleModel:    input.Model,
		Year:            input.Year,
		InitialOdometer: input.InitialOdometer,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := vc.Store.CreateVehicle(c.Request.Context(), &vehicle); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle: " + err.Error()})
		return
	}

	go vc.Dashboard.PushRefresh()
	c.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
}

// ListVehicles returns every vehicle for admins, and only actively assigned
// vehicles for drivers.
func (vc *VehicleController) ListVehicles(c *gin.Context) {
	userID, role := middleware.CallerIdentity(c)

	vehicles, err := scopeVehiclesForCaller(c.Request.Context(), vc.Store, userID, role, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}

func (vc *VehicleController) GetVehicle(c *gin.Context) {
	vehicle, err := vc.Store.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// UpdateVehicle applies a partial edit. Admin only.
func (vc *VehicleController) UpdateVehicle(c *gin.Context) {
	vehicle, err := vc.Store.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	var input struct {
		Label           *string `json:"label"`
		VIN             *string `json:"vin"`
		Plate           *string `json:"plate"`
		Make            *string `json:"make"`
		Model           *string `json:"model"`
		Year            *int    `json:"year"`
		InitialOdometer *int64  `json:"initial_odometer"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Label != nil {
		vehicle.Label = *input.Label
	}
	if input.VIN != nil {
		vehicle.VIN = *input.VIN
	}
	if input.Plate != nil {
		vehicle.Plate = *input.Plate
	}
	if input.Make != nil {
		vehicle.Make = *input.Make
	}
	if input.Model != nil {
		vehicle.VehicleModel = *input.Model
	}
	if input.Year != nil {
		vehicle.Year = *input.Year
	}
	if input.InitialOdometer != nil {
		vehicle.InitialOdometer = input.InitialOdometer
	}
	vehicle.UpdatedAt = time.Now()

	if err := vc.Store.UpdateVehicle(c.Request.Context(), &vehicle); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// DeleteVehicle removes the vehicle record only. History records keep their
// reference by id and stay visible in the per-collection listings.
func (vc *VehicleController) DeleteVehicle(c *gin.Context) {
	if err := vc.Store.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	go vc.Dashboard.PushRefresh()
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted"})
}

// scopeVehiclesForCaller filters the vehicle list by role: admins see the
// whole fleet, drivers only vehicles covered by an active assignment.
func scopeVehiclesForCaller(ctx context.Context, st store.FleetStore, userID uint, role string, now time.Time) ([]models.Vehicle, error) {
	vehicles, err := st.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	allowed, unrestricted, err := permittedVehicleIDs(ctx, st, userID, role, now)
	if err != nil {
		return nil, err
	}
	return scopeRecords(vehicles, allowed, unrestricted, func(v models.Vehicle) string { return v.ID }), nil
}
