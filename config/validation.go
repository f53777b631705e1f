package config

import (
	"fmt"
	"strings"
)

// validateConfig validates the loaded configuration values.
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateGNewsConfig(&config.GNews); err != nil {
		return fmt.Errorf("gnews config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.Host == "" {
		return fmt.Errorf("database host must not be empty")
	}

	if config.MaxConns < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConns)
	}

	if config.MinConns < 0 || config.MinConns > config.MaxConns {
		return fmt.Errorf("min connections must be between 0 and max connections, got %d", config.MinConns)
	}

	return nil
}

func validateGNewsConfig(config *GNewsConfig) error {
	// The API key is optional: without it the backfill paths are disabled,
	// not broken.
	if !strings.HasPrefix(config.BaseURL, "http://") && !strings.HasPrefix(config.BaseURL, "https://") {
		return fmt.Errorf("gnews base URL must be an http(s) URL, got %q", config.BaseURL)
	}

	if config.ClientTimeout <= 0 {
		return fmt.Errorf("gnews client timeout must be positive, got %v", config.ClientTimeout)
	}

	if config.JobInterval <= 0 {
		return fmt.Errorf("gnews job interval must be positive, got %v", config.JobInterval)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", config.Level)
	}

	switch strings.ToLower(config.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", config.Format)
	}

	return nil
}
