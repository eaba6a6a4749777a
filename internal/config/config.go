// Package config loads process settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	StoreEndpoint string        `env:"STORE_ENDPOINT,required"`
	StoreTimeout  time.Duration `env:"STORE_TIMEOUT,default=0s"`

	Port    string `env:"PORT,default=8080"`
	GinMode string `env:"GIN_MODE,default=release"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`

	NotificationTTL      time.Duration `env:"NOTIFICATION_TTL,default=3s"`
	DefaultViewportWidth int           `env:"DEFAULT_VIEWPORT_WIDTH,default=1200"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL,default=gemini-2.5-flash"`

	RateLimitRPS   int `env:"RATE_LIMIT_RPS,default=5"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST,default=10"`

	// Semicolon separated.
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS,default=*"`
}

// Load reads .env files (missing files are fine) and decodes the environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !isMissingFile(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.StoreEndpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("STORE_ENDPOINT must be an absolute http(s) URL, got %q", c.StoreEndpoint)
	}
	if c.StoreTimeout < 0 {
		return errors.New("STORE_TIMEOUT cannot be negative")
	}
	if c.NotificationTTL <= 0 {
		return errors.New("NOTIFICATION_TTL must be positive")
	}
	if c.DefaultViewportWidth <= 0 {
		return errors.New("DEFAULT_VIEWPORT_WIDTH must be positive")
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// ExtractorEnabled reports whether posting extraction can reach Gemini.
func (c *Config) ExtractorEnabled() bool {
	return strings.TrimSpace(c.GeminiAPIKey) != ""
}

func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
