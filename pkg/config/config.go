package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"

	EnvironmentProduction = "production"
)

type (
	Config struct {
		HTTP
		Database
		Log
		Telemetry
		RateLimit
		Environment string
	}

	HTTP struct {
		Host            string
		Port            int
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
	}

	Database struct {
		Driver   string
		URL      string
		SSL      bool
		MaxConns int
		Migrate  bool
	}

	Log struct {
		Level   string
		SQL     bool
		LokiURL string
	}

	Telemetry struct {
		ServiceName    string
		ServiceVersion string
		MetricsEnabled bool
		MetricsPort    int
		OTLPEndpoint   string
	}

	RateLimit struct {
		Enabled  bool
		RedisURL string
	}
)

// Load reads a .env file when one exists and then builds the configuration from
// the environment.
func Load() *Config {
	_ = godotenv.Load()

	return NewConfig()
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("app_env", "development")
	v.SetDefault("host", "")
	v.SetDefault("port", 4000)
	v.SetDefault("http_read_timeout", "15s")
	v.SetDefault("http_write_timeout", "15s")
	v.SetDefault("shutdown_timeout", "10s")

	v.SetDefault("database_driver", DriverPostgres)
	v.SetDefault("database_url", "")
	v.SetDefault("database_ssl", true)
	v.SetDefault("database_max_conns", 1)
	v.SetDefault("database_migrate", false)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_sql", false)
	v.SetDefault("loki_url", "")

	v.SetDefault("service_name", "flashcards")
	v.SetDefault("service_version", "1.0.0")
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("metrics_port", 9091)
	v.SetDefault("otel_exporter_otlp_endpoint", "")

	v.SetDefault("rate_limit_enabled", true)
	v.SetDefault("redis_url", "")

	return &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTP{
			Host:            v.GetString("HOST"),
			Port:            v.GetInt("PORT"),
			ReadTimeout:     v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("HTTP_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: Database{
			Driver:   v.GetString("DATABASE_DRIVER"),
			URL:      v.GetString("DATABASE_URL"),
			SSL:      v.GetBool("DATABASE_SSL"),
			MaxConns: v.GetInt("DATABASE_MAX_CONNS"),
			Migrate:  v.GetBool("DATABASE_MIGRATE"),
		},
		Log: Log{
			Level:   v.GetString("LOG_LEVEL"),
			SQL:     v.GetBool("LOG_SQL"),
			LokiURL: v.GetString("LOKI_URL"),
		},
		Telemetry: Telemetry{
			ServiceName:    v.GetString("SERVICE_NAME"),
			ServiceVersion: v.GetString("SERVICE_VERSION"),
			MetricsEnabled: v.GetBool("METRICS_ENABLED"),
			MetricsPort:    v.GetInt("METRICS_PORT"),
			OTLPEndpoint:   v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
		RateLimit: RateLimit{
			Enabled:  v.GetBool("RATE_LIMIT_ENABLED"),
			RedisURL: v.GetString("REDIS_URL"),
		},
	}
}

func (c *Config) Validate() error {
	var errs []error

	if c.Database.URL == "" {
		errs = append(errs, errors.New("DATABASE_URL is not set"))
	}

	if c.Database.Driver != DriverPostgres && c.Database.Driver != DriverSQLite {
		errs = append(errs, fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver))
	}

	if c.Database.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("DATABASE_MAX_CONNS must be positive, got %d", c.Database.MaxConns))
	}

	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.HTTP.Port))
	}

	if c.Telemetry.MetricsEnabled && c.Telemetry.MetricsPort == c.HTTP.Port {
		errs = append(errs, errors.New("METRICS_PORT must differ from PORT"))
	}

	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// Addr is the listen address of the API server.
func (h HTTP) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}
