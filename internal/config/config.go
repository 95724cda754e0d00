package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                  string   `mapstructure:"PORT"`
	Env                   string   `mapstructure:"ENV"`
	DatabaseURL           string   `mapstructure:"DATABASE_URL"`
	DBMaxConns            int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns            int32    `mapstructure:"DB_MIN_CONNS"`
	RedisURL              string   `mapstructure:"REDIS_URL"`
	CyborgURL             string   `mapstructure:"CYBORG_URL"`
	CyborgTimeoutSeconds  int      `mapstructure:"CYBORG_TIMEOUT_SECONDS"`
	SearchCacheTTLSeconds int      `mapstructure:"SEARCH_CACHE_TTL_SECONDS"`
	CORSOrigins           []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS          float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst        int      `mapstructure:"RATE_LIMIT_BURST"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CYBORG_URL", "http://localhost:7000")
	v.SetDefault("CYBORG_TIMEOUT_SECONDS", 5)
	v.SetDefault("SEARCH_CACHE_TTL_SECONDS", 60)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("REDIS_URL")
	v.BindEnv("CYBORG_URL")
	v.BindEnv("CYBORG_TIMEOUT_SECONDS")
	v.BindEnv("SEARCH_CACHE_TTL_SECONDS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CyborgTimeout returns the bounded timeout for calls to the external index.
// A push that outlives this deadline is treated as failed and dropped.
func (c *Config) CyborgTimeout() time.Duration {
	if c.CyborgTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.CyborgTimeoutSeconds) * time.Second
}

// SearchCacheTTL returns how long redacted search responses stay cached.
func (c *Config) SearchCacheTTL() time.Duration {
	if c.SearchCacheTTLSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.SearchCacheTTLSeconds) * time.Second
}
