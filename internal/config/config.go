package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Record store (SheetDB proxy)
	SheetDBBaseURL string `mapstructure:"SHEETDB_BASE_URL"`
	SheetDBAPIID   string `mapstructure:"SHEETDB_API_ID"`
	SheetDBAPIKey  string `mapstructure:"SHEETDB_API_KEY"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	OAuthUserinfoURL   string `mapstructure:"OAUTH_USERINFO_URL"`
	AllowedEmails      string `mapstructure:"ALLOWED_EMAILS"` // comma-separated

	// SMTP (low-stock alert digests)
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`

	// Background poller
	AlertPollSeconds int `mapstructure:"ALERT_POLL_INTERVAL_SECONDS"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SHEETDB_BASE_URL", "https://sheetdb.io/api/v1")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("OAUTH_USERINFO_URL", "https://www.googleapis.com/oauth2/v3/userinfo")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("ALERT_POLL_INTERVAL_SECONDS", 300)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AllowedEmailList splits the ALLOWED_EMAILS value into trimmed addresses.
// Empty entries are dropped so a trailing comma does not allow everyone in.
func (c *Config) AllowedEmailList() []string {
	parts := strings.Split(c.AllowedEmails, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if e := strings.TrimSpace(p); e != "" {
			out = append(out, e)
		}
	}
	return out
}
