package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port                  string   `mapstructure:"PORT"`
	Env                   string   `mapstructure:"ENV"`
	DatabaseURL           string   `mapstructure:"DATABASE_URL"`
	DBMaxConns            int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns            int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins           []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS          float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst        int      `mapstructure:"RATE_LIMIT_BURST"`
	AuthTokenSecret       string   `mapstructure:"AUTH_TOKEN_SECRET"`
	AuthTokenTTLHours     int      `mapstructure:"AUTH_TOKEN_TTL_HOURS"`
	FrontendURL           string   `mapstructure:"FRONTEND_URL"`
	VerifyLinkTTLMinutes  int      `mapstructure:"VERIFY_LINK_TTL_MINUTES"`
	UniqueExcludesDeleted bool     `mapstructure:"UNIQUE_EXCLUDES_DELETED"`
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
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("VERIFY_LINK_TTL_MINUTES", 60)
	v.SetDefault("UNIQUE_EXCLUDES_DELETED", false)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("AUTH_TOKEN_SECRET")
	v.BindEnv("AUTH_TOKEN_TTL_HOURS")
	v.BindEnv("FRONTEND_URL")
	v.BindEnv("VERIFY_LINK_TTL_MINUTES")
	v.BindEnv("UNIQUE_EXCLUDES_DELETED")

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

	if cfg.IsDev() && cfg.AuthTokenSecret == "" {
		cfg.AuthTokenSecret = "dev-insecure-token-secret"
		log.Println("WARNING: AUTH_TOKEN_SECRET not set; using an insecure development secret.")
		log.Println("WARNING: Set AUTH_TOKEN_SECRET before deploying this server.")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that the configuration is safe to run. Outside
// development mode AUTH_TOKEN_SECRET must be set so tokens and
// verification links are signed with a real secret.
func (c *Config) Validate() error {
	if !c.IsDev() && c.AuthTokenSecret == "" {
		return fmt.Errorf("AUTH_TOKEN_SECRET is required when ENV=%q", c.Env)
	}
	if c.VerifyLinkTTLMinutes <= 0 {
		return fmt.Errorf("VERIFY_LINK_TTL_MINUTES must be positive, got %d", c.VerifyLinkTTLMinutes)
	}
	if c.AuthTokenTTLHours <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL_HOURS must be positive, got %d", c.AuthTokenTTLHours)
	}
	return nil
}
