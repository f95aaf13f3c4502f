package main

import (
	"os"

	v1 "go_vms/api/v1"
	"go_vms/api/v1/middleware"
	"go_vms/internal/auth"
	"go_vms/internal/config"
	"go_vms/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	logrus.Info("✓ Configuration loaded")

	// 2. Initialize JWT signing
	auth.InitJWT(cfg.JWT.Secret)

	// 3. Initialize MySQL
	if err := db.InitMySQL(cfg.MySQL.DSN); err != nil {
		logrus.Fatalf("Failed to initialize MySQL: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Migrate {
		if err := db.Migrate(db.DB); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
			os.Exit(1)
		}
		logrus.Info("✓ Database migrated")
	}

	// 4. Initialize Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	v1.SetupRouter(r, db.DB, cfg)

	logrus.Infof("✓ Server starting on %s", cfg.HTTPAddr)

	// Start server
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
