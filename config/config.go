package config

import (
	"fmt"
	"strings"

	"findmyrun.app/errors"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig    `split_words:"true"`
	Database   DatabaseConfig  `split_words:"true"`
	Admin      AdminConfig     `split_words:"true"`
	Email      EmailConfig     `split_words:"true"`
	Geocode    GeocodeConfig   `split_words:"true"`
	Cache      CacheConfig     `split_words:"true"`
	Scheduler  SchedulerConfig `split_words:"true"`
	AppBaseURL string          `envconfig:"APP_URL" default:"http://localhost:8080"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port         int  `envconfig:"SERVER_PORT" default:"8080"`
	SecureCookie bool `envconfig:"SECURE_COOKIE" default:"false"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"findmyrun"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

// GetDSN returns a formatted database connection string
func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// AdminConfig contains moderation and admin console settings
type AdminConfig struct {
	Secret string `envconfig:"ADMIN_SECRET" required:"true"`
	Email  string `envconfig:"ADMIN_EMAIL" required:"true"`
}

// EmailConfig contains email provider settings. Provider selects between
// the Resend API and plain SMTP.
type EmailConfig struct {
	Provider     string `envconfig:"EMAIL_PROVIDER" default:"smtp"`
	ResendAPIKey string `envconfig:"RESEND_API_KEY"`
	SMTPHost     string `envconfig:"EMAIL_SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     int    `envconfig:"EMAIL_SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"EMAIL_SMTP_USERNAME"`
	SMTPPassword string `envconfig:"EMAIL_SMTP_PASSWORD"`
	FromName     string `envconfig:"EMAIL_FROM_NAME" default:"Find My Run"`
	FromAddress  string `envconfig:"EMAIL_FROM_ADDRESS" default:"hello@findmyrun.club"`
}

// GeocodeConfig contains settings for the geocoding provider
type GeocodeConfig struct {
	MapboxToken     string `envconfig:"MAPBOX_TOKEN"`
	BaseURL         string `envconfig:"MAPBOX_BASE_URL" default:"https://api.mapbox.com/geocoding/v5/mapbox.places"`
	CacheTTLMinutes int    `envconfig:"GEOCODE_CACHE_TTL_MINUTES" default:"1440"`
}

// CacheConfig contains cache backend settings
type CacheConfig struct {
	Type          string `envconfig:"CACHE_TYPE" default:"memory"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

// SchedulerConfig contains settings for background housekeeping
type SchedulerConfig struct {
	SessionPurgeIntervalMinutes int `envconfig:"SESSION_PURGE_INTERVAL" default:"1440"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Admin.Validate(); err != nil {
		return err
	}
	if err := c.Email.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	return c.validateAppBaseURL()
}

func (c *Config) validateAppBaseURL() error {
	if c.AppBaseURL == "" {
		return errors.NewConfigurationError("APP_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(c.AppBaseURL, "http://") && !strings.HasPrefix(c.AppBaseURL, "https://") {
		return errors.NewConfigurationError("APP_URL must start with http:// or https://", nil)
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// ValidateSSLMode validates the SSL mode configuration
func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

// Validate checks database configuration
func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > 65535 {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

// Validate checks admin configuration
func (a *AdminConfig) Validate() error {
	if a.Secret == "" {
		return errors.NewConfigurationError("ADMIN_SECRET is required", nil)
	}
	if !strings.Contains(a.Email, "@") {
		return errors.NewConfigurationError("ADMIN_EMAIL must be a valid email address", nil)
	}
	return nil
}

// Validate checks email configuration
func (e *EmailConfig) Validate() error {
	switch e.Provider {
	case "resend":
		if e.ResendAPIKey == "" {
			return errors.NewConfigurationError("RESEND_API_KEY is required when EMAIL_PROVIDER=resend", nil)
		}
	case "smtp":
		if e.SMTPHost == "" {
			return errors.NewConfigurationError("EMAIL_SMTP_HOST cannot be empty", nil)
		}
		if e.SMTPPort < 1 || e.SMTPPort > 65535 {
			return errors.NewConfigurationError("EMAIL_SMTP_PORT must be between 1 and 65535", nil)
		}
	default:
		return errors.NewConfigurationError("EMAIL_PROVIDER must be either 'resend' or 'smtp'", nil)
	}

	if e.FromName == "" {
		return errors.NewConfigurationError("EMAIL_FROM_NAME cannot be empty", nil)
	}
	if !strings.Contains(e.FromAddress, "@") {
		return errors.NewConfigurationError("EMAIL_FROM_ADDRESS must be a valid email address", nil)
	}
	return nil
}

// Validate checks cache configuration
func (c *CacheConfig) Validate() error {
	if c.Type != "memory" && c.Type != "redis" {
		return errors.NewConfigurationError("CACHE_TYPE must be either 'memory' or 'redis'", nil)
	}
	if c.Type == "redis" && c.RedisAddr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when CACHE_TYPE=redis", nil)
	}
	return nil
}

// Validate checks scheduler configuration
func (s *SchedulerConfig) Validate() error {
	if s.SessionPurgeIntervalMinutes < 1 {
		return errors.NewConfigurationError("SESSION_PURGE_INTERVAL must be at least 1 minute", nil)
	}
	return nil
}
