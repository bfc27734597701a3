package config

import (
	"net"
	"strconv"
)

const (
	// wildcard bind, all interfaces
	DefaultHost = "0.0.0.0"
	DefaultPort = 8081

	ServiceName    = "digital-recipes-parser"
	ServiceVersion = "1.0.0"
)

type Config struct {
	Host           string
	Port           int
	Environment    string
	LogLevel       string
	GinMode        string
	AllowedOrigins []string
}

// returns the listen address in host:port form
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
