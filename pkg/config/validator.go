package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validator validates configuration with clear error messages.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast).
func (v *Validator) ValidateAll() error {
	if err := v.validateServer(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}
	if err := v.validateData(); err != nil {
		return fmt.Errorf("data validation failed: %w", err)
	}
	if err := v.validateCORS(); err != nil {
		return fmt.Errorf("cors validation failed: %w", err)
	}
	if err := v.validateGeneration(); err != nil {
		return fmt.Errorf("generation validation failed: %w", err)
	}
	if err := v.validateHorde(); err != nil {
		return fmt.Errorf("horde validation failed: %w", err)
	}
	return nil
}

func (v *Validator) validateServer() error {
	s := v.cfg.Server
	if s.Host == "" {
		return fmt.Errorf("host must not be empty")
	}
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", s.Port)
	}
	return nil
}

func (v *Validator) validateData() error {
	if strings.TrimSpace(v.cfg.Data.Root) == "" {
		return fmt.Errorf("data root must not be empty")
	}
	return nil
}

func (v *Validator) validateCORS() error {
	for _, origin := range v.cfg.Security.CORS.Origins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("origin %q is not a valid URL", origin)
		}
	}
	return nil
}

func (v *Validator) validateGeneration() error {
	g := v.cfg.Generation
	if g.DefaultMaxContextTokens < 512 {
		return fmt.Errorf("default_max_context_tokens must be at least 512, got %d", g.DefaultMaxContextTokens)
	}
	if g.DefaultMaxTokens < 1 {
		return fmt.Errorf("default_max_tokens must be positive, got %d", g.DefaultMaxTokens)
	}
	if g.DefaultMaxTokens >= g.DefaultMaxContextTokens {
		return fmt.Errorf("default_max_tokens (%d) must be smaller than default_max_context_tokens (%d)",
			g.DefaultMaxTokens, g.DefaultMaxContextTokens)
	}
	return nil
}

func (v *Validator) validateHorde() error {
	h := v.cfg.Horde
	if h.PollInterval.Std() <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %v", h.PollInterval.Std())
	}
	if h.Timeout.Std() <= h.PollInterval.Std() {
		return fmt.Errorf("timeout (%v) must exceed poll_interval (%v)", h.Timeout.Std(), h.PollInterval.Std())
	}
	return nil
}
