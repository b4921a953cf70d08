package models

import "time"

// Vehicle is a fleet vehicle. Deleting a vehicle never cascades to its
// history records; maintenance, odometer and check entries keep referencing
// the id.
type Vehicle struct {
	ID              string    `json:"id" gorm:"primaryKey" bson:"_id"`
	Label           string    `json:"label" binding:"required" bson:"label"`
	VIN             string    `json:"vin,omitempty" bson:"vin,omitempty"`
	Plate           string    `json:"plate,omitempty" bson:"plate,omitempty"`
	Make            string    `json:"make,omitempty" bson:"make,omitempty"`
	VehicleModel    string    `json:"model,omitempty" bson:"model,omitempty"`
	Year            int       `json:"year,omitempty" bson:"year,omitempty"`
	InitialOdometer *int64    `json:"initial_odometer,omitempty" bson:"initialOdometer,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updatedAt"`
}
