package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Chemi     ChemiConfig     `mapstructure:"chemi"`
	Recent    RecentConfig    `mapstructure:"recent"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path         string `mapstructure:"path"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// ChemiConfig controls the engine and the input rules applied before it.
type ChemiConfig struct {
	Timezone      string `mapstructure:"timezone"`     // IANA zone deciding "today"
	ContentFile   string `mapstructure:"content_file"` // empty = embedded pools
	MinNameLength int    `mapstructure:"min_name_length"`
	MaxNameLength int    `mapstructure:"max_name_length"`
}

// RecentConfig holds recent search history configuration
type RecentConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Limit   int  `mapstructure:"limit"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.path", "name-chemi.db")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 10.0)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("chemi.timezone", "Asia/Seoul")
	v.SetDefault("chemi.content_file", "")
	v.SetDefault("chemi.min_name_length", 2)
	v.SetDefault("chemi.max_name_length", 10)
	v.SetDefault("recent.enabled", true)
	v.SetDefault("recent.limit", 5)
	v.SetDefault("log.level", "")
}

func bindEnvVars(v *viper.Viper) {
	// Server
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			v.Set("server.port", p)
		}
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		v.Set("server.mode", mode)
	}

	// Database
	if path := os.Getenv("DATABASE_PATH"); path != "" {
		v.Set("database.path", path)
	}

	// Rate Limit
	if enabled := os.Getenv("RATE_LIMIT_ENABLED"); enabled != "" {
		v.Set("rate_limit.enabled", enabled == "true")
	}
	if rps := os.Getenv("RATE_LIMIT_RPS"); rps != "" {
		if r, err := strconv.ParseFloat(rps, 64); err == nil {
			v.Set("rate_limit.requests_per_second", r)
		}
	}
	if burst := os.Getenv("RATE_LIMIT_BURST"); burst != "" {
		if b, err := strconv.Atoi(burst); err == nil {
			v.Set("rate_limit.burst", b)
		}
	}

	// Engine
	if tz := os.Getenv("CHEMI_TIMEZONE"); tz != "" {
		v.Set("chemi.timezone", tz)
	}
	if file := os.Getenv("CHEMI_CONTENT_FILE"); file != "" {
		v.Set("chemi.content_file", file)
	}

	// Recent searches
	if enabled := os.Getenv("RECENT_ENABLED"); enabled != "" {
		v.Set("recent.enabled", enabled == "true")
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		v.Set("log.level", level)
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	if c.Server.Mode != "debug" && c.Server.Mode != "release" && c.Server.Mode != "test" {
		return fmt.Errorf("invalid server mode: %s (must be 'debug', 'release', or 'test')", c.Server.Mode)
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database path cannot be empty")
	}

	if c.Database.MaxOpenConns < 1 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("invalid connection pool: max_open_conns=%d max_idle_conns=%d",
			c.Database.MaxOpenConns, c.Database.MaxIdleConns)
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("rate limit requests_per_second must be positive")
	}

	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit burst must be positive")
	}

	if _, err := c.Chemi.Location(); err != nil {
		return err
	}

	if c.Chemi.MinNameLength < 1 || c.Chemi.MaxNameLength < c.Chemi.MinNameLength {
		return fmt.Errorf("invalid name length bounds: min=%d max=%d",
			c.Chemi.MinNameLength, c.Chemi.MaxNameLength)
	}

	if c.Recent.Limit < 1 {
		return fmt.Errorf("recent limit must be positive")
	}

	return nil
}

// Location resolves the configured time zone. An empty zone means the host's local zone.
func (c ChemiConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
