package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fleetkeeper/internal/middleware"
	"fleetkeeper/internal/models"
	"fleetkeeper/internal/storage"
	"fleetkeeper/internal/store"
)

type ReceiptController struct {
	Store    store.FleetStore
	Uploader *storage.Uploader
}

// CreateReceipt accepts a multipart expense submission with an optional
// scanned image.
func (rc *ReceiptController) CreateReceipt(c *gin.Context) {
	vehicleID := c.PostForm("vehicle_id")
	if vehicleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vehicle_id is required"})
		return
	}
	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be numeric"})
		return
	}

	now := time.Now()
	date := now
	if raw := c.PostForm("date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be RFC3339"})
			return
		}
		date = parsed
	}

	userID, _ := middleware.CallerIdentity(c)
	receipt := models.Receipt{
		ID:        models.NewID("RCT"),
		VehicleID: vehicleID,
		DriverID:  userID,
		Date:      date,
		Amount:    amount,
		Category:  c.DefaultPostForm("category", "other"),
		Notes:     c.PostForm("notes"),
		CreatedAt: now,
	}

	if header, err := c.FormFile("image"); err == nil {
		if rc.Uploader == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "image storage is not configured"})
			return
		}
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()

		key := fmt.Sprintf("receipts/%s/%s-%s", vehicleID, receipt.ID, header.Filename)
		receipt.ImageURL, err = rc.Uploader.UploadFile(c.Request.Context(), file, key, header.Header.Get("Content-Type"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image: " + err.Error()})
			return
		}
	}

	if err := rc.Store.CreateReceipt(c.Request.Context(), &receipt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save receipt: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"receipt": receipt})
}

// ListReceipts returns expenses, optionally filtered by ?vehicle_id=.
// Drivers only see receipts for their actively assigned vehicles.
func (rc *ReceiptController) ListReceipts(c *gin.Context) {
	userID, role := middleware.CallerIdentity(c)
	allowed, unrestricted, err := permittedVehicleIDs(c.Request.Context(), rc.Store, userID, role, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	receipts, err := rc.Store.ListReceipts(c.Request.Context(), c.Query("vehicle_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	receipts = scopeRecords(receipts, allowed, unrestricted, func(r models.Receipt) string { return r.VehicleID })
	c.JSON(http.StatusOK, gin.H{"data": receipts})
}
