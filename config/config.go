package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Postgres   PostgresConfig

	Uploads    UploadsConfig
	Pagination PaginationConfig
	RateLimit  RateLimitConfig
	Reconcile  ReconcileConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// UploadsConfig controls the photo store: where files live on disk, the URL
// prefix they are served under, and the normalization parameters.
type UploadsConfig struct {
	Dir          string
	PublicPrefix string
	MaxSizeBytes int64
	Dimension    int
	Quality      int
}

type PaginationConfig struct {
	DefaultLimit int
}

type RateLimitConfig struct {
	PerMin int
}

// ReconcileConfig controls the orphan-photo sweep. Interval 0 disables the
// periodic run; the maintenance endpoint stays available either way.
type ReconcileConfig struct {
	Interval time.Duration
}

// DSN builds a pgx-compatible connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DBName, p.SSLMode)
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	// Uploads / photo store
	cfg.Uploads.Dir = viper.GetString("uploads.dir")
	cfg.Uploads.PublicPrefix = viper.GetString("uploads.public_prefix")
	cfg.Uploads.MaxSizeBytes = viper.GetInt64("uploads.max_size_bytes")
	cfg.Uploads.Dimension = viper.GetInt("uploads.dimension")
	cfg.Uploads.Quality = viper.GetInt("uploads.quality")

	// Listing / rate limiting / maintenance
	cfg.Pagination.DefaultLimit = viper.GetInt("pagination.default_limit")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.Reconcile.Interval = viper.GetDuration("reconcile.interval")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")

	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "item_catalog")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("uploads.dir", "public/uploads")
	viper.SetDefault("uploads.public_prefix", "/uploads")
	viper.SetDefault("uploads.max_size_bytes", 5*1024*1024)
	viper.SetDefault("uploads.dimension", 500)
	viper.SetDefault("uploads.quality", 80)

	viper.SetDefault("pagination.default_limit", 10)
	viper.SetDefault("rate_limit.per_min", 120)
	viper.SetDefault("reconcile.interval", time.Duration(0))
}

func (cfg *Config) validate() error {
	if cfg.Uploads.Dimension <= 0 {
		return fmt.Errorf("uploads.dimension must be positive, got %d", cfg.Uploads.Dimension)
	}
	if cfg.Uploads.Quality <= 0 || cfg.Uploads.Quality > 100 {
		return fmt.Errorf("uploads.quality must be in 1..100, got %d", cfg.Uploads.Quality)
	}
	if cfg.Pagination.DefaultLimit <= 0 || cfg.Pagination.DefaultLimit > 50 {
		return fmt.Errorf("pagination.default_limit must be in 1..50, got %d", cfg.Pagination.DefaultLimit)
	}
	return nil
}
