package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

type Config struct {
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	SessionStore  string        `mapstructure:"SESSION_STORE"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`

	AmadeusBaseURL      string `mapstructure:"AMADEUS_BASE_URL"`
	AmadeusClientID     string `mapstructure:"AMADEUS_CLIENT_ID"`
	AmadeusClientSecret string `mapstructure:"AMADEUS_CLIENT_SECRET"`
	AmadeusMaxOffers    int    `mapstructure:"AMADEUS_MAX_OFFERS"`

	UpstreamTimeout    time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`
	UpstreamMaxRetries int           `mapstructure:"UPSTREAM_MAX_RETRIES"`
	UpstreamRPS        float64       `mapstructure:"UPSTREAM_RPS"`
	UpstreamBurst      int           `mapstructure:"UPSTREAM_BURST"`

	VisaBaseURL string  `mapstructure:"VISA_BASE_URL"`
	VisaRPS     float64 `mapstructure:"VISA_RPS"`
	VisaBurst   int     `mapstructure:"VISA_BURST"`

	DedupKeepUnkeyed bool `mapstructure:"DEDUP_KEEP_UNKEYED"`
	MockFallback     bool `mapstructure:"MOCK_FALLBACK"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SESSION_STORE", SessionStoreRedis)
	v.SetDefault("SESSION_TTL", 30*time.Minute)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("AMADEUS_BASE_URL", "https://test.api.amadeus.com")
	v.SetDefault("AMADEUS_CLIENT_ID", "")
	v.SetDefault("AMADEUS_CLIENT_SECRET", "")
	v.SetDefault("AMADEUS_MAX_OFFERS", 10)
	v.SetDefault("UPSTREAM_TIMEOUT", 10*time.Second)
	v.SetDefault("UPSTREAM_MAX_RETRIES", 2)
	v.SetDefault("UPSTREAM_RPS", 5.0)
	v.SetDefault("UPSTREAM_BURST", 10)
	v.SetDefault("VISA_BASE_URL", "https://rough-sun-2523.fly.dev")
	v.SetDefault("VISA_RPS", 2.0)
	v.SetDefault("VISA_BURST", 4)
	v.SetDefault("DEDUP_KEEP_UNKEYED", false)
	v.SetDefault("MOCK_FALLBACK", true)
}

// Load reads an optional config.yaml from "." or "./config" and lets
// environment variables override every key.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.SessionStore = strings.ToLower(c.SessionStore)
	switch c.SessionStore {
	case SessionStoreRedis, SessionStoreMemory:
	default:
		return fmt.Errorf("SESSION_STORE must be %q or %q, got %q", SessionStoreRedis, SessionStoreMemory, c.SessionStore)
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.UpstreamTimeout <= 0 {
		return errors.New("UPSTREAM_TIMEOUT must be positive")
	}
	if c.UpstreamMaxRetries < 0 {
		return errors.New("UPSTREAM_MAX_RETRIES cannot be negative")
	}
	if c.VisaRPS <= 0 || c.VisaBurst <= 0 {
		return errors.New("VISA_RPS and VISA_BURST must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AmadeusConfigured reports whether live Amadeus credentials are present.
func (c *Config) AmadeusConfigured() bool {
	return c.AmadeusClientID != "" && c.AmadeusClientSecret != ""
}
