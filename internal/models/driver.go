package models

import "gorm.io/gorm"

// Driver holds the driver-specific profile for a user with role "driver".
// Credentials live on the User record, not here.
type Driver struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"unique"`
	User          User   `gorm:"foreignKey:UserID" json:"-"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
}
