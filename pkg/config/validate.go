package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for required fields and valid values.
// Returns an error with a descriptive field path on failure.
func (c *Config) Validate() error {
	var errs []error

	// server.port must be positive.
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be > 0, got %d", c.Server.Port))
	}

	// engine.base_url is required (the fallback path never dials it, but
	// live mode is selected by the key alone).
	if c.Engine.BaseURL == "" {
		errs = append(errs, fmt.Errorf("engine.base_url is required"))
	}

	// engine.model is required.
	if c.Engine.Model == "" {
		errs = append(errs, fmt.Errorf("engine.model is required"))
	}

	// engine.temperature must be within the backend's accepted range.
	if c.Engine.Temperature < 0.0 || c.Engine.Temperature > 2.0 {
		errs = append(errs, fmt.Errorf("engine.temperature must be between 0.0 and 2.0, got %g", c.Engine.Temperature))
	}

	// engine.max_tokens must be positive.
	if c.Engine.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("engine.max_tokens must be > 0, got %d", c.Engine.MaxTokens))
	}

	// observability.metrics.path must be absolute when metrics are enabled.
	if c.Observability.Metrics.Enabled && !strings.HasPrefix(c.Observability.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("observability.metrics.path must start with \"/\", got %q", c.Observability.Metrics.Path))
	}

	return errors.Join(errs...)
}
