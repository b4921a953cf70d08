package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fleetkeeper/internal/config"
	"fleetkeeper/internal/logger"
	"fleetkeeper/internal/routes"
	"fleetkeeper/internal/storage"
	"fleetkeeper/internal/store"
	"fleetkeeper/internal/store/gormstore"
	"fleetkeeper/internal/store/mongostore"
)

func main() {
	// Structured logging to stdout + rotating file
	logger.Setup()

	// .env is optional; env vars alone are enough
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	// Postgres always holds users/auth; it also holds the fleet
	// collections unless the mongo backend is selected.
	config.InitDB(cfg.Database)

	var fleetStore store.FleetStore
	switch cfg.Fleet.StoreBackend {
	case "mongo":
		fleetStore = mongostore.New(config.InitMongo(cfg.Mongo))
		logrus.Info("fleet store backend: mongo")
	default:
		fleetStore = gormstore.New(config.GetDB())
		logrus.Info("fleet store backend: postgres")
	}

	var uploader *storage.Uploader
	if cfg.S3.Bucket != "" {
		uploader, err = storage.NewUploader(cfg.S3)
		if err != nil {
			log.Fatalf("could not init S3 uploader: %v", err)
		}
	} else {
		logrus.Warn("S3 not configured; photo uploads disabled")
	}

	r := routes.SetupRouter(routes.Deps{
		Cfg:      cfg,
		Store:    fleetStore,
		Uploader: uploader,
	})

	log.Printf("🚀 Server running at :%s", cfg.Server.Port)
	log.Fatal(r.Run("0.0.0.0:" + cfg.Server.Port))
}
