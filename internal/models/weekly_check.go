package models

import (
	"time"

	"github.com/lib/pq"
)

// WeeklyCheck is a recurring driver attestation: an odometer reading, a photo
// of the odometer, and any number of exterior/interior photos. Expected
// cadence is 7 days; the notification aggregator flags vehicles at 8.
type WeeklyCheck struct {
	ID               string         `json:"id" gorm:"primaryKey" bson:"_id"`
	VehicleID        string         `json:"vehicle_id" gorm:"index" bson:"vehicleID"`
	DriverID         uint           `json:"driver_id" gorm:"index" bson:"driverID"`
	Date             time.Time      `json:"date" bson:"date"`
	Odometer         int64          `json:"odometer" bson:"odometer"`
	OdometerPhotoURL string         `json:"odometer_photo_url" bson:"odometerPhotoURL"`
	PhotoURLs        pq.StringArray `json:"photo_urls" gorm:"type:text[]" bson:"photoURLs"`
	SubmittedAt      time.Time      `json:"submitted_at" bson:"submittedAt"`
	CreatedAt        time.Time      `json:"created_at" bson:"createdAt"`
}
