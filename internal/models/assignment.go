package models

import "time"

// Assignment links a driver to a vehicle for a period. It only scopes
// visibility (which vehicles a driver sees); the service engine never reads
// it directly.
type Assignment struct {
	ID        string     `json:"id" gorm:"primaryKey" bson:"_id"`
	VehicleID string     `json:"vehicle_id" gorm:"index" binding:"required" bson:"vehicleID"`
	DriverID  uint       `json:"driver_id" gorm:"index" binding:"required" bson:"driverID"`
	StartDate time.Time  `json:"start_date" bson:"startDate"`
	EndDate   *time.Time `json:"end_date,omitempty" bson:"endDate,omitempty"`
	CreatedAt time.Time  `json:"created_at" bson:"createdAt"`
}

// ActiveAt reports whether the assignment covers the given instant.
func (a Assignment) ActiveAt(t time.Time) bool {
	if a.StartDate.After(t) {
		return false
	}
	return a.EndDate == nil || !a.EndDate.Before(t)
}
