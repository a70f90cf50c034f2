// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode       string        `mapstructure:"GIN_MODE"`
	ServerHost    string        `mapstructure:"SERVER_HOST"`
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	ServerTimeout time.Duration `mapstructure:"SERVER_TIMEOUT_SECONDS"`

	// Database Configuration
	DBHost            string        `mapstructure:"DB_HOST"`
	DBPort            string        `mapstructure:"DB_PORT"`
	DBUser            string        `mapstructure:"DB_USER"`
	DBPassword        string        `mapstructure:"DB_PASSWORD"`
	DBName            string        `mapstructure:"DB_NAME"`
	DBSSLMode         string        `mapstructure:"DB_SSL_MODE"`
	DBTimezone        string        `mapstructure:"DB_TIMEZONE"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME_MINUTES"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// JWT Configuration
	JWTSecretKey         string        `mapstructure:"JWT_SECRET_KEY"`
	JWTAccessTokenExpiry time.Duration `mapstructure:"JWT_ACCESS_TOKEN_EXPIRY_MINUTES"`
	JWTIssuer            string        `mapstructure:"JWT_ISSUER"`

	// Google OAuth Configuration
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string `mapstructure:"GOOGLE_REDIRECT_URI"`

	// OAuth state cookie settings
	OAuthStateCookieName     string `mapstructure:"OAUTH_STATE_COOKIE_NAME"`
	OAuthCookieDomain        string `mapstructure:"OAUTH_COOKIE_DOMAIN"`
	OAuthCookieMaxAgeMinutes int    `mapstructure:"OAUTH_COOKIE_MAX_AGE_MINUTES"`
	OAuthCookieSecure        bool   `mapstructure:"OAUTH_COOKIE_SECURE"`

	// File storage
	FileStoragePath   string `mapstructure:"FILE_STORAGE_PATH"`
	FilePublicBaseURL string `mapstructure:"FILE_PUBLIC_BASE_URL"`

	// Application Specific Configuration
	MarketplaceItemLifespanDays  int    `mapstructure:"MARKETPLACE_ITEM_LIFESPAN_DAYS"`
	MarketplaceExpiryJobSchedule string `mapstructure:"MARKETPLACE_EXPIRY_JOB_SCHEDULE"`

	// Elasticsearch Configuration (optional; blank disables ES-backed post search)
	ElasticsearchURL string `mapstructure:"ELASTICSEARCH_URL"`
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// Set default values
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "uniconnect_db")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MINUTES", 60)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("JWT_SECRET_KEY", "")
	v.SetDefault("JWT_ACCESS_TOKEN_EXPIRY_MINUTES", 60*24)
	v.SetDefault("JWT_ISSUER", "uniconnect_backend")

	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URI", "http://localhost:8080/api/v1/auth/google/callback")

	v.SetDefault("OAUTH_STATE_COOKIE_NAME", "uc_oauth_state")
	v.SetDefault("OAUTH_COOKIE_DOMAIN", "")
	v.SetDefault("OAUTH_COOKIE_MAX_AGE_MINUTES", 10)
	v.SetDefault("OAUTH_COOKIE_SECURE", false)

	v.SetDefault("FILE_STORAGE_PATH", "./uploads")
	v.SetDefault("FILE_PUBLIC_BASE_URL", "http://localhost:8080/uploads")

	v.SetDefault("MARKETPLACE_ITEM_LIFESPAN_DAYS", 60)
	v.SetDefault("MARKETPLACE_EXPIRY_JOB_SCHEDULE", "@daily")

	v.SetDefault("ELASTICSEARCH_URL", "")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Convert duration fields
	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second
	cfg.DBConnMaxLifetime = time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME_MINUTES")) * time.Minute
	cfg.JWTAccessTokenExpiry = time.Duration(v.GetInt("JWT_ACCESS_TOKEN_EXPIRY_MINUTES")) * time.Minute

	// The signing secret has a fixed lifecycle: loaded once here, never rotated
	// at runtime. Rotating it is an operational event that invalidates all
	// outstanding session tokens.
	if cfg.JWTSecretKey == "" {
		return nil, fmt.Errorf("FATAL: JWT_SECRET_KEY is not set. A signing secret is required to issue session tokens")
	}

	return &cfg, nil
}
