package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig
	DB           DBConfig
	JWT          JWTConfig
	S3           S3Config
	Log          LogConfig
	Model        ModelConfig
	CORS         CORSConfig
	Email        EmailConfig
	Social       SocialConfig
	AuthProvider AuthProviderConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds settings for archiving uploaded resumes to object storage.
// An empty bucket disables archiving.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ModelConfig holds settings for the LLM chat model provider.
type ModelConfig struct {
	Provider     string  `mapstructure:"provider"`
	APIKey       string  `mapstructure:"api_key"`
	DefaultModel string  `mapstructure:"default_model"`
	TimeoutSecs  int     `mapstructure:"timeout_secs"`
	Temperature  float64 `mapstructure:"temperature"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// SocialConfig holds OAuth client settings for social login token
// verification. A provider with no client ID configured still works when its
// verifier does not check the token audience.
type SocialConfig struct {
	GoogleClientID string `mapstructure:"google_client_id"`
}

// AuthProviderConfig holds admin-API settings for the external auth provider,
// used by cmd/reconcile to diff its user list against the local users table.
type AuthProviderConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	ServiceKey string `mapstructure:"service_key"`
	PageSize   int    `mapstructure:"page_size"`
}

// Load reads configuration from environment variables with the FOLIO_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "folio")
	v.SetDefault("db.password", "folio_secret")
	v.SetDefault("db.name", "folio_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "folio")

	// S3 defaults (archiving disabled unless a bucket is configured)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 20)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Model defaults
	v.SetDefault("model.provider", "gemini")
	v.SetDefault("model.api_key", "")
	v.SetDefault("model.default_model", "gemini-2.0-flash")
	v.SetDefault("model.timeout_secs", 120)
	v.SetDefault("model.temperature", 0.7)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-northeast-2")
	v.SetDefault("email.from_address", "noreply@folio.app")
	v.SetDefault("email.from_name", "Folio")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Social login defaults
	v.SetDefault("social.google_client_id", "")

	// Auth provider defaults (reconcile tooling)
	v.SetDefault("auth_provider.base_url", "")
	v.SetDefault("auth_provider.service_key", "")
	v.SetDefault("auth_provider.page_size", 100)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "FOLIO_SERVER_PORT",
		"server.read_timeout":       "FOLIO_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "FOLIO_SERVER_WRITE_TIMEOUT",
		"server.environment":        "FOLIO_SERVER_ENVIRONMENT",
		"db.host":                   "FOLIO_DB_HOST",
		"db.port":                   "FOLIO_DB_PORT",
		"db.user":                   "FOLIO_DB_USER",
		"db.password":               "FOLIO_DB_PASSWORD",
		"db.name":                   "FOLIO_DB_NAME",
		"db.sslmode":                "FOLIO_DB_SSLMODE",
		"db.max_open":               "FOLIO_DB_MAX_OPEN",
		"db.max_idle":               "FOLIO_DB_MAX_IDLE",
		"jwt.secret":                "FOLIO_JWT_SECRET",
		"jwt.access_expiry":         "FOLIO_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":        "FOLIO_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                "FOLIO_JWT_ISSUER",
		"s3.region":                 "FOLIO_S3_REGION",
		"s3.bucket":                 "FOLIO_S3_BUCKET",
		"s3.endpoint":               "FOLIO_S3_ENDPOINT",
		"s3.access_key":             "FOLIO_S3_ACCESS_KEY",
		"s3.secret_key":             "FOLIO_S3_SECRET_KEY",
		"s3.max_file_size_mb":       "FOLIO_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":         "FOLIO_S3_PRESIGN_EXPIRY",
		"log.level":                 "FOLIO_LOG_LEVEL",
		"log.format":                "FOLIO_LOG_FORMAT",
		"model.provider":            "FOLIO_MODEL_PROVIDER",
		"model.api_key":             "FOLIO_MODEL_API_KEY",
		"model.default_model":       "FOLIO_MODEL_DEFAULT_MODEL",
		"model.timeout_secs":        "FOLIO_MODEL_TIMEOUT_SECS",
		"model.temperature":         "FOLIO_MODEL_TEMPERATURE",
		"cors.allowed_origins":      "FOLIO_CORS_ALLOWED_ORIGINS",
		"email.provider":            "FOLIO_EMAIL_PROVIDER",
		"email.region":              "FOLIO_EMAIL_REGION",
		"email.from_address":        "FOLIO_EMAIL_FROM_ADDRESS",
		"email.from_name":           "FOLIO_EMAIL_FROM_NAME",
		"email.frontend_url":        "FOLIO_EMAIL_FRONTEND_URL",
		"social.google_client_id":   "FOLIO_SOCIAL_GOOGLE_CLIENT_ID",
		"auth_provider.base_url":    "FOLIO_AUTH_PROVIDER_BASE_URL",
		"auth_provider.service_key": "FOLIO_AUTH_PROVIDER_SERVICE_KEY",
		"auth_provider.page_size":   "FOLIO_AUTH_PROVIDER_PAGE_SIZE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FOLIO_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FOLIO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Model = ModelConfig{
		Provider:     v.GetString("model.provider"),
		APIKey:       v.GetString("model.api_key"),
		DefaultModel: v.GetString("model.default_model"),
		TimeoutSecs:  v.GetInt("model.timeout_secs"),
		Temperature:  v.GetFloat64("model.temperature"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}
	cfg.Social = SocialConfig{
		GoogleClientID: v.GetString("social.google_client_id"),
	}
	cfg.AuthProvider = AuthProviderConfig{
		BaseURL:    v.GetString("auth_provider.base_url"),
		ServiceKey: v.GetString("auth_provider.service_key"),
		PageSize:   v.GetInt("auth_provider.page_size"),
	}

	return cfg, nil
}
