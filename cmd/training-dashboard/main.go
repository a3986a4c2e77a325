package main

import (
	"log"
	"os"

	"training-dashboard/internal/app"
	"training-dashboard/internal/config"
	"training-dashboard/internal/logger"
)

const defaultConfigPath = "dashboard.yaml"

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	level := logger.ParseLevel(cfg.Log.Level)
	appLogger := logger.New(level, cfg.Log.JSON)
	appLogger.Info("Main", "logger configured", map[string]interface{}{
		"level": level.String(),
		"json":  cfg.Log.JSON,
	})

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}

// configPath returns DASHBOARD_CONFIG, or dashboard.yaml in the working
// directory.
func configPath() string {
	if p := os.Getenv("DASHBOARD_CONFIG"); p != "" {
		return p
	}
	return defaultConfigPath
}
