package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Session  SessionConfig  `yaml:"session"`
	Audit    AuditConfig    `yaml:"audit"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SessionConfig controls the local "current actor" cache.
type SessionConfig struct {
	FilePath string        `yaml:"file_path" env:"SESSION_FILE_PATH" env-default:"./.casedesk-session"`
	Secret   string        `yaml:"secret"    env:"SESSION_SECRET"    env-required:"true"`
	TTL      time.Duration `yaml:"ttl"       env:"SESSION_TTL"       env-default:"12h"`
}

// AuditConfig holds audit trail read-side settings.
type AuditConfig struct {
	PlaceholderOnDegraded bool          `yaml:"placeholder_on_degraded" env:"AUDIT_PLACEHOLDER_ON_DEGRADED" env-default:"false"`
	ExportMaxRows         int           `yaml:"export_max_rows"         env:"AUDIT_EXPORT_MAX_ROWS"         env-default:"10000"`
	StatsTopN             int           `yaml:"stats_top_n"             env:"AUDIT_STATS_TOP_N"             env-default:"5"`
	StatsWindow           time.Duration `yaml:"stats_window"            env:"AUDIT_STATS_WINDOW"            env-default:"168h"`
	FailureLogSize        int           `yaml:"failure_log_size"        env:"AUDIT_FAILURE_LOG_SIZE"        env-default:"100"`
}
