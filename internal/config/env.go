package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// loads configuration from environment variables
//
// bind host and port are fixed; only logging, mode and CORS settings are read
// from the environment.
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	environment := os.Getenv("ENVIRONMENT")
	logLevel := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	ginMode := os.Getenv("GIN_MODE")

	if environment == "" {
		environment = "development"
	}

	if logLevel == "" {
		logLevel = "info"
	}

	if !validLogLevels[logLevel] {
		return nil, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", logLevel)
	}

	// gin defaults to debug; only opt in explicitly
	if ginMode != gin.DebugMode && ginMode != gin.TestMode {
		ginMode = gin.ReleaseMode
	}

	return &Config{
		Host:           DefaultHost,
		Port:           DefaultPort,
		Environment:    environment,
		LogLevel:       logLevel,
		GinMode:        ginMode,
		AllowedOrigins: parseOrigins(os.Getenv("ALLOWED_ORIGINS")),
	}, nil
}

// splits a comma separated origin list, dropping blanks
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}
