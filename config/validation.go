package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigRequirements defines required configuration for each environment
type ConfigRequirements struct {
	RequiredEnvVars []string
}

var requirements = map[Environment]ConfigRequirements{
	Development: {},
	Test:        {},
	CI:          {},
	Production: {
		// localhost is never a sensible production backend
		RequiredEnvVars: []string{"API_BASE_URL"},
	},
}

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError

	for _, envVar := range requirements[cfg.Environment].RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			errs = append(errs, ValidationError{Field: envVar, Message: "required environment variable is not set"})
		}
	}

	if u, err := url.Parse(cfg.Client.APIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{Field: "API_BASE_URL", Message: fmt.Sprintf("invalid URL %q", cfg.Client.APIBaseURL)})
	}
	if cfg.Client.APITimeout <= 0 {
		errs = append(errs, ValidationError{Field: "API_TIMEOUT", Message: "must be positive"})
	}
	if cfg.Client.GenerateTimeout <= 0 {
		errs = append(errs, ValidationError{Field: "GENERATE_TIMEOUT", Message: "must be positive"})
	}
	if cfg.Client.CommitConcurrency < 1 {
		errs = append(errs, ValidationError{Field: "COMMIT_CONCURRENCY", Message: "must be at least 1"})
	}

	switch cfg.Server.DBDriver {
	case "sqlite", "postgres":
	default:
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.Server.DBDriver)})
	}
	if cfg.Server.FoodExpiryDays < 0 {
		errs = append(errs, ValidationError{Field: "FOOD_EXPIRY_DAYS", Message: "must not be negative"})
	}

	if len(errs) == 0 {
		return nil
	}

	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}
