package main

import (
	"codeberg.org/digitalrecipes/parser/internal/config"
	"codeberg.org/digitalrecipes/parser/internal/logger"
	"github.com/gin-gonic/gin"
)

// @title Digital Recipes Parser Service
// @version 1.0.0
// @description Parser service for the digital recipes platform.
// @description Exposes a liveness probe for orchestration and monitoring.

// @BasePath /

func main() {
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.FatalErr(err, "failed to load configuration")
	}

	if err := logger.Configure(cfg.Environment, cfg.LogLevel); err != nil {
		logger.FatalErr(err, "failed to configure logger")
	}

	gin.SetMode(cfg.GinMode)

	logger.Info("starting parser service",
		"environment", cfg.Environment,
		"address", cfg.Address(),
	)

	srv := NewServer(cfg)

	if err := srv.Run(); err != nil {
		logger.FatalErr(err, "server failed to start")
	}
}
