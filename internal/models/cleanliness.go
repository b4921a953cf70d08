package models

import "time"

// CleanlinessLog records an interior/exterior condition rating for a vehicle.
type CleanlinessLog struct {
	ID        string    `json:"id" gorm:"primaryKey" bson:"_id"`
	VehicleID string    `json:"vehicle_id" gorm:"index" binding:"required" bson:"vehicleID"`
	DriverID  uint      `json:"driver_id" gorm:"index" bson:"driverID"`
	Date      time.Time `json:"date" bson:"date"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5" bson:"rating"`
	Notes     string    `json:"notes" bson:"notes"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}
