package models

import "time"

// Receipt is an expense record (fuel, parts, tolls) with an optional scanned
// image stored on S3.
type Receipt struct {
	ID        string    `json:"id" gorm:"primaryKey" bson:"_id"`
	VehicleID string    `json:"vehicle_id" gorm:"index" bson:"vehicleID"`
	DriverID  uint      `json:"driver_id" gorm:"index" bson:"driverID"`
	Date      time.Time `json:"date" bson:"date"`
	Amount    float64   `json:"amount" bson:"amount"`
	Category  string    `json:"category" bson:"category"` // "fuel", "parts", "tolls", "other"
	ImageURL  string    `json:"image_url,omitempty" bson:"imageURL,omitempty"`
	Notes     string    `json:"notes" bson:"notes"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}
