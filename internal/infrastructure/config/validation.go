package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/dumbed/internal/domain/entity"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "disabled", "off"}
	validLogFormats = []string{"console", "json", "text"}
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, strings.ToLower(config.Logging.Level)) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of %s (got %q)", strings.Join(validLogLevels, ", "), config.Logging.Level))
	}
	if !slices.Contains(validLogFormats, strings.ToLower(config.Logging.Format)) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of %s (got %q)", strings.Join(validLogFormats, ", "), config.Logging.Format))
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	if _, err := entity.ParseSide(config.Layout.DefaultSide); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"layout.default_side must be left, right, up or down (got %q)", config.Layout.DefaultSide))
	}
	if config.Layout.HistoryLimit < 1 || config.Layout.HistoryLimit > maxHistoryLimit {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"layout.history_limit must be between 1 and %d", maxHistoryLimit))
	}
	return validationErrors
}
