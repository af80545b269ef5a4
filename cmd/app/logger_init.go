package main

import (
	"github.com/tamilpanchangam/panchangam/internal/config"
	"github.com/tamilpanchangam/panchangam/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source locations are only useful while developing
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	format := logger.LogFormatText
	if cfg.LogJSON {
		format = logger.LogFormatJSON
	}

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		format,
		logger.DefaultServiceName,
		logger.DefaultVersion,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
