package config

import (
	"errors"
	"fmt"
	"time"
)

// ValidationError contains details about what failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validateConfig checks all config values for validity.
// Returns nil if valid, or joined errors for all validation failures.
// The API key is intentionally not checked here.
func validateConfig(cfg *Config) error {
	var errs []error

	if cfg.Model == "" {
		errs = append(errs, &ValidationError{
			Field:   "model",
			Value:   cfg.Model,
			Message: "must not be empty",
		})
	}

	if cfg.BaseURL == "" {
		errs = append(errs, &ValidationError{
			Field:   "base_url",
			Value:   cfg.BaseURL,
			Message: "must not be empty",
		})
	}

	if _, err := time.ParseDuration(cfg.Timeout); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "timeout",
			Value:   cfg.Timeout,
			Message: "must be a valid duration",
		})
	}

	if !validLogLevels[cfg.LogLevel] {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: "must be one of: debug, info, warn, error",
		})
	}

	if cfg.LogFile == "" {
		errs = append(errs, &ValidationError{
			Field:   "log_file",
			Value:   cfg.LogFile,
			Message: "must not be empty",
		})
	}

	return errors.Join(errs...)
}
