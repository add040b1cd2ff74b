package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // Location must resolve without a system zoneinfo database.

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be within [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be within [1, 65535] (got %d)", c.Server.Port)
	}

	if err := c.Registry.validate(); err != nil {
		return fmt.Errorf("registry: %w", err)
	}

	if err := c.Archive.validate(); err != nil {
		return fmt.Errorf("archive: %w", err)
	}

	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return fmt.Errorf("tracing.sample_rate must be within [0, 1] (got %v)", c.Tracing.SampleRate)
	}

	return nil
}

func (r *RegistryConfig) validate() error {
	if r.MaxBatchSize <= 0 {
		return fmt.Errorf("max_batch_size must be > 0 (got %d)", r.MaxBatchSize)
	}
	if _, err := r.Location(); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	return nil
}

// Location resolves the timezone used to determine "today".
func (r RegistryConfig) Location() (*time.Location, error) {
	if strings.TrimSpace(r.Timezone) == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(r.Timezone)
}

func (a *ArchiveConfig) validate() error {
	a.Driver = strings.ToLower(strings.TrimSpace(a.Driver))
	switch a.Driver {
	case "", "none":
		a.Driver = "none"
	case "fs":
		if strings.TrimSpace(a.Dir) == "" {
			return fmt.Errorf("dir is required for fs driver")
		}
	case "s3":
		if strings.TrimSpace(a.S3Bucket) == "" {
			return fmt.Errorf("s3_bucket is required for s3 driver")
		}
	default:
		return fmt.Errorf("unknown driver %q (want none, fs or s3)", a.Driver)
	}
	return nil
}
