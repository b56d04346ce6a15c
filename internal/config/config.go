// Package config provides configuration management for the Prop Parlay application.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	StatsFeed StatsFeedConfig `mapstructure:"stats_feed" validate:"required"`
	Engine    EngineConfig    `mapstructure:"engine" validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler" validate:"required"`
	API       APIConfig       `mapstructure:"api" validate:"required"`
	Metrics   MetricsConfig   `mapstructure:"metrics" validate:"required"`
	Health    HealthConfig    `mapstructure:"health" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// StatsFeedConfig represents the upstream stats feed configuration
type StatsFeedConfig struct {
	BaseURL               string  `mapstructure:"base_url" validate:"required,url"`
	APIKey                string  `mapstructure:"api_key"`
	TimeoutSeconds        int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	RetryAttempts         int     `mapstructure:"retry_attempts" validate:"required,gte=0"`
	RequestsPerSecond     float64 `mapstructure:"requests_per_second" validate:"required,gt=0"`
	BurstSize             int     `mapstructure:"burst_size" validate:"required,gt=0"`
	CircuitBreakerEnabled bool    `mapstructure:"circuit_breaker_enabled"`
	FailureThreshold      int     `mapstructure:"failure_threshold" validate:"required,gt=0"`
	CooldownSeconds       int     `mapstructure:"cooldown_seconds" validate:"required,gt=0"`
}

// EngineConfig represents parlay engine configuration
type EngineConfig struct {
	DefaultStake    float64 `mapstructure:"default_stake" validate:"required,gt=0"`
	MaxStake        float64 `mapstructure:"max_stake" validate:"required,gt=0"`
	CacheTTLSeconds int     `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
}

// SchedulerConfig represents slate refresh scheduling configuration
type SchedulerConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	RefreshSchedule string `mapstructure:"refresh_schedule" validate:"required"`
}

// APIConfig represents HTTP API configuration
type APIConfig struct {
	Port                  int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeoutSeconds    int      `mapstructure:"read_timeout_seconds" validate:"required,gt=0"`
	WriteTimeoutSeconds   int      `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
	AllowedOrigins        []string `mapstructure:"allowed_origins" validate:"required,min=1"`
	ShutdownGraceSeconds  int      `mapstructure:"shutdown_grace_seconds" validate:"required,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required"`
}

// HealthConfig represents health check server configuration
type HealthConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// FeedTimeout returns the stats feed request timeout as a duration
func (c *Config) FeedTimeout() time.Duration {
	return time.Duration(c.StatsFeed.TimeoutSeconds) * time.Second
}

// SlateCacheTTL returns the graded slate cache TTL as a duration
func (c *Config) SlateCacheTTL() time.Duration {
	return time.Duration(c.Engine.CacheTTLSeconds) * time.Second
}

// APIAddress returns the listen address for the HTTP API
func (c *Config) APIAddress() string {
	return fmt.Sprintf(":%d", c.API.Port)
}
