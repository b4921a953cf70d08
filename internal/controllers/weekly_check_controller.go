package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fleetkeeper/internal/middleware"
	"fleetkeeper/internal/models"
	"fleetkeeper/internal/storage"
	"fleetkeeper/internal/store"
)

type WeeklyCheckController struct {
	Store     store.FleetStore
	Uploader  *storage.Uploader
	Dashboard *DashboardController
}

// CreateWeeklyCheck accepts a multipart submission: vehicle_id, odometer,
// optional date, a mandatory odometer_photo and any number of photos.
// Uploaded files land on S3; the record stores their URLs.
func (wc *WeeklyCheckController) CreateWeeklyCheck(c *gin.Context) {
	vehicleID := c.PostForm("vehicle_id")
	if vehicleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vehicle_id is required"})
		return
	}
	odometer, err := strconv.ParseInt(c.PostForm("odometer"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "odometer must be an integer"})
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

	odoPhoto, err := c.FormFile("odometer_photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "odometer_photo is required"})
		return
	}

	userID, _ := middleware.CallerIdentity(c)
	check := models.WeeklyCheck{
		ID:          models.NewID("WCK"),
		VehicleID:   vehicleID,
		DriverID:    userID,
		Date:        date,
		Odometer:    odometer,
		SubmittedAt: now,
		CreatedAt:   now,
	}

	check.OdometerPhotoURL, err = wc.uploadPhoto(c, odoPhoto, fmt.Sprintf("checks/%s/odometer-%s", vehicleID, odoPhoto.Filename))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload odometer photo: " + err.Error()})
		return
	}

	if form, err := c.MultipartForm(); err == nil {
		for i, photo := range form.File["photos"] {
			url, err := wc.uploadPhoto(c, photo, fmt.Sprintf("checks/%s/photo-%d-%s", vehicleID, i, photo.Filename))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo: " + err.Error()})
				return
			}
			check.PhotoURLs = append(check.PhotoURLs, url)
		}
	}

	if err := wc.Store.CreateWeeklyCheck(c.Request.Context(), &check); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save weekly check: " + err.Error()})
		return
	}

	go wc.Dashboard.PushRefresh()
	c.JSON(http.StatusCreated, gin.H{"check": check})
}

func (wc *WeeklyCheckController) uploadPhoto(c *gin.Context, header *multipart.FileHeader, key string) (string, error) {
	if wc.Uploader == nil {
		return "", fmt.Errorf("photo storage is not configured")
	}
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()
	return wc.Uploader.UploadFile(c.Request.Context(), file, key, header.Header.Get("Content-Type"))
}

// ListWeeklyChecks returns submissions, optionally filtered by ?vehicle_id=.
// Drivers only see checks for their actively assigned vehicles.
func (wc *WeeklyCheckController) ListWeeklyChecks(c *gin.Context) {
	userID, role := middleware.CallerIdentity(c)
	allowed, unrestricted, err := permittedVehicleIDs(c.Request.Context(), wc.Store, userID, role, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	checks, err := wc.Store.ListWeeklyChecks(c.Request.Context(), c.Query("vehicle_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	checks = scopeRecords(checks, allowed, unrestricted, func(w models.WeeklyCheck) string { return w.VehicleID })
	c.JSON(http.StatusOK, gin.H{"data": checks})
}
