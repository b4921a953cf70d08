package models

import "time"

// MaintenanceRecord is an append-only service history entry. ServiceType is
// free text as entered by the user ("Full Synthetic Oil Change", "brake
// pads"); the fleet package normalizes it against the service catalog.
type MaintenanceRecord struct {
	ID          string    `json:"id" gorm:"primaryKey" bson:"_id"`
	VehicleID   string    `json:"vehicle_id" gorm:"index" binding:"required" bson:"vehicleID"`
	Date        time.Time `json:"date" bson:"date"`
	Odometer    *int64    `json:"odometer,omitempty" bson:"odometer,omitempty"`
	ServiceType string    `json:"service_type" bson:"serviceType"`
	Cost        float64   `json:"cost" bson:"cost"`
	Vendor      string    `json:"vendor" bson:"vendor"`
	Notes       string    `json:"notes" bson:"notes"`
	CreatedAt   time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updatedAt"`
}
