package main

import (
	"github.com/apiarygames/hivecore/internal/config"
	"github.com/apiarygames/hivecore/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "hivecore",
		Version:     version,
		Environment: cfg.Environment,
		AddSource:   addSource,
	}

	logger.Init(loggerConfig)
}
