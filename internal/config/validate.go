package config

import (
	"fmt"
	"strings"
)

const minSessionSecretLen = 32

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if len(c.Session.Secret) < minSessionSecretLen {
		return fmt.Errorf("session.secret must be at least %d characters (got %d)", minSessionSecretLen, len(c.Session.Secret))
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be > 0 (got %s)", c.Session.TTL)
	}

	if err := c.Audit.validate(); err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (a *AuditConfig) validate() error {
	if a.ExportMaxRows <= 0 {
		return fmt.Errorf("export_max_rows must be > 0 (got %d)", a.ExportMaxRows)
	}
	if a.StatsTopN <= 0 {
		return fmt.Errorf("stats_top_n must be > 0 (got %d)", a.StatsTopN)
	}
	if a.StatsWindow <= 0 {
		return fmt.Errorf("stats_window must be > 0 (got %s)", a.StatsWindow)
	}
	if a.FailureLogSize < 0 {
		return fmt.Errorf("failure_log_size must be >= 0 (got %d)", a.FailureLogSize)
	}
	return nil
}
