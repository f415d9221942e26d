package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0")
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Notes.validate(); err != nil {
		return fmt.Errorf("notes: %w", err)
	}

	if c.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("rate_limit.requests_per_second must be >= 0 (got %v)", c.RateLimit.RequestsPerSecond)
	}
	if c.RateLimit.RequestsPerSecond > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate_limit.burst must be >= 1 (got %d)", c.RateLimit.Burst)
	}
	if c.RateLimit.RequestsPerSecond > 0 && c.RateLimit.IdleTTL <= 0 {
		return fmt.Errorf("rate_limit.idle_ttl must be > 0")
	}

	return nil
}

func (s *StorageConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))

	switch s.Driver {
	case DriverMemory:
	case DriverPostgres:
		if s.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required for driver %q", s.Driver)
		}
		if s.Postgres.MinConns > s.Postgres.MaxConns {
			return fmt.Errorf("postgres.min_conns (%d) must be <= max_conns (%d)", s.Postgres.MinConns, s.Postgres.MaxConns)
		}
	case DriverDynamoDB:
		if s.DynamoDB.Table == "" {
			return fmt.Errorf("dynamodb.table is required for driver %q", s.Driver)
		}
		if s.DynamoDB.RetryMaxAttempts < 1 {
			return fmt.Errorf("dynamodb.retry_max_attempts must be >= 1 (got %d)", s.DynamoDB.RetryMaxAttempts)
		}
	default:
		return fmt.Errorf("unknown driver %q (want memory, postgres or dynamodb)", s.Driver)
	}

	return nil
}

func (n *NotesConfig) validate() error {
	if n.MaxPageSize < 1 {
		return fmt.Errorf("max_page_size must be >= 1 (got %d)", n.MaxPageSize)
	}
	if n.DefaultPageSize < 1 || n.DefaultPageSize > n.MaxPageSize {
		return fmt.Errorf("default_page_size must be in 1..%d (got %d)", n.MaxPageSize, n.DefaultPageSize)
	}
	return nil
}
