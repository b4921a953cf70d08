package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleetkeeper/internal/models"
)

var (
	// DB is the globally accessible Postgres handle. Auth always lives
	// here; the fleet collections do too when the postgres backend is
	// selected.
	DB *gorm.DB
)

// InitDB opens the Postgres connection and migrates the schema.
func InitDB(cfg DatabaseConfig) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode, cfg.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Driver{},
		&models.Vehicle{},
		&models.MaintenanceRecord{},
		&models.OdometerLog{},
		&models.WeeklyCheck{},
		&models.Assignment{},
		&models.Receipt{},
		&models.CleanlinessLog{},
	)
	if err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	DB = db
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}
