package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
	JWT       JWTConfig       `yaml:"jwt"`
	Resolver  ResolverConfig  `yaml:"resolver"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// UpstreamConfig contains marketplace backend settings
type UpstreamConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// JWTConfig contains JWT token settings
type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// ResolverConfig contains payment join resolver settings
type ResolverConfig struct {
	Workers               int `yaml:"workers"`
	CacheCapacity         int `yaml:"cache_capacity"`
	CacheTTLMinutes       int `yaml:"cache_ttl_minutes"`
	ClientCacheCapacity   int `yaml:"client_cache_capacity"`
	ClientCacheTTLMinutes int `yaml:"client_cache_ttl_minutes"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	SweepCaches   string `yaml:"sweep_caches"`
	LogCacheStats string `yaml:"log_cache_stats"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Upstream backend
	if val := os.Getenv("UPSTREAM_BASE_URL"); val != "" {
		c.Upstream.BaseURL = val
	}
	if val := os.Getenv("UPSTREAM_TIMEOUT_SECONDS"); val != "" {
		fmt.Sscanf(val, "%d", &c.Upstream.TimeoutSeconds)
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// Resolver
	if val := os.Getenv("RESOLVER_WORKERS"); val != "" {
		fmt.Sscanf(val, "%d", &c.Resolver.Workers)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Upstream validation
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream base URL is required")
	}
	if c.Upstream.TimeoutSeconds <= 0 {
		c.Upstream.TimeoutSeconds = 15
	}

	// JWT validation
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}

	// Resolver defaults
	if c.Resolver.Workers <= 0 {
		c.Resolver.Workers = 5
	}
	if c.Resolver.CacheCapacity <= 0 {
		c.Resolver.CacheCapacity = 1024
	}
	if c.Resolver.CacheTTLMinutes <= 0 {
		c.Resolver.CacheTTLMinutes = 10
	}
	if c.Resolver.ClientCacheCapacity <= 0 {
		c.Resolver.ClientCacheCapacity = 1024
	}
	if c.Resolver.ClientCacheTTLMinutes <= 0 {
		c.Resolver.ClientCacheTTLMinutes = 30
	}

	// Scheduler defaults
	if c.Scheduler.SweepCaches == "" {
		c.Scheduler.SweepCaches = "0 */5 * * * *" // Every 5 minutes
	}
	if c.Scheduler.LogCacheStats == "" {
		c.Scheduler.LogCacheStats = "0 0 * * * *" // Hourly
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
