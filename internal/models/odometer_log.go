package models

import "time"

// OdometerLog is a driver-submitted mileage reading. Readings are monotonic
// in intent but nothing enforces it; the resolver tolerates out-of-order
// values.
type OdometerLog struct {
	ID        string    `json:"id" gorm:"primaryKey" bson:"_id"`
	VehicleID string    `json:"vehicle_id" gorm:"index" binding:"required" bson:"vehicleID"`
	DriverID  uint      `json:"driver_id" gorm:"index" bson:"driverID"`
	Date      time.Time `json:"date" bson:"date"`
	Reading   int64     `json:"reading" bson:"reading"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}
