package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"
)

// ServerConfig configures the HTTP API of one pool side.
type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	WriteTimeout   time.Duration `mapstructure:"write-timeout"`
	ReadTimeout    time.Duration `mapstructure:"read-timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle-timeout"`
	AllowedOrigins []string      `mapstructure:"allowed-origins"`
	LogLevel       string        `mapstructure:"log-level"`
	// MaxContentLength caps the JSON body of the POST routes (stake,
	// deposit, execute-bridge, blacklist votes and token writes), in bytes.
	MaxContentLength int64 `mapstructure:"max-content-length"`
	// HealthCheckInterval is the period, in seconds, of the event queue
	// health check.
	HealthCheckInterval int `mapstructure:"health-check-interval"`
}

func (cfg *ServerConfig) Validate() error {
	if net.ParseIP(cfg.Host) == nil {
		return fmt.Errorf("invalid host: %v", cfg.Host)
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return errors.New("invalid port")
	}

	for name, d := range map[string]time.Duration{
		"write": cfg.WriteTimeout,
		"read":  cfg.ReadTimeout,
		"idle":  cfg.IdleTimeout,
	} {
		if d < 0 {
			return fmt.Errorf("%s timeout cannot be negative", name)
		}
	}

	if cfg.MaxContentLength <= 0 {
		return fmt.Errorf("max-content-length must be a positive number of bytes")
	}
	if cfg.HealthCheckInterval <= 0 {
		return fmt.Errorf("health-check-interval must be a positive number of seconds")
	}
	return cfg.ValidateServerLogLevel()
}

// ValidateServerLogLevel accepts an empty level, which keeps zerolog's
// global level.
func (cfg *ServerConfig) ValidateServerLogLevel() error {
	if cfg.LogLevel == "" {
		return nil
	}
	parsedLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if parsedLevel < zerolog.DebugLevel || parsedLevel > zerolog.FatalLevel {
		return fmt.Errorf("only log levels from debug to fatal are supported")
	}
	return nil
}
