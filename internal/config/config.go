// Package config provides environment-driven configuration for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds settings for the HTTP server process.
type ServerConfig struct {
	Port        int
	DatabaseURL string
}

// NewServerConfig builds server configuration from environment variables.
// PORT defaults to 8080; DATABASE_URL is required.
func NewServerConfig() (*ServerConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		port = p
	}

	cfg := &ServerConfig{
		Port:        port,
		DatabaseURL: databaseURL,
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	return nil
}
