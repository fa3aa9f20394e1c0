package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV:
//
//	SERVER_PORT=8080
//	RATE_LIMIT_PER_MINUTE=60
//	POSTGRES_ENABLED=true
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=bizdays
//	POSTGRES_SSLMODE=disable
//	BATCH_MAX_QUERIES=100
//	BATCH_PARALLEL=4
//	HISTORY_LIMIT=20
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // calculation history storage
	Batch    BatchConfig    // batch range queries (HTTP and CSV)
	History  HistoryConfig  // history listing
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port      string // The TCP port the HTTP server will listen on (e.g., "8080")
	RateLimit int    // requests per client IP per minute
}

// PostgresConfig defines connection details for PostgreSQL.
//
// The database only backs the calculation history; when Enabled is false the
// service runs without it and the connection fields are not validated.
type PostgresConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// BatchConfig bounds batch range computations.
type BatchConfig struct {
	MaxQueries int // queries accepted per batch request
	Parallel   int // concurrent range computations
}

// HistoryConfig controls the history listing.
type HistoryConfig struct {
	Limit int // default number of entries returned
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	viper.SetDefault("POSTGRES_ENABLED", false)
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "bizdays")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("BATCH_MAX_QUERIES", 100)
	viper.SetDefault("BATCH_PARALLEL", 4)
	viper.SetDefault("HISTORY_LIMIT", 20)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:      viper.GetString("SERVER_PORT"),
			RateLimit: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Postgres: PostgresConfig{
			Enabled:  viper.GetBool("POSTGRES_ENABLED"),
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Batch: BatchConfig{
			MaxQueries: viper.GetInt("BATCH_MAX_QUERIES"),
			Parallel:   viper.GetInt("BATCH_PARALLEL"),
		},
		History: HistoryConfig{
			Limit: viper.GetInt("HISTORY_LIMIT"),
		},
	}

	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// validateConfig terminates the application when required variables are
// missing. Postgres settings are only required when history storage is enabled.
func validateConfig() {
	if missing := missingKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}

func missingKeys(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Batch.MaxQueries <= 0 {
		missing = append(missing, "BATCH_MAX_QUERIES")
	}
	if cfg.Batch.Parallel <= 0 {
		missing = append(missing, "BATCH_PARALLEL")
	}

	if !cfg.Postgres.Enabled {
		return missing
	}
	if cfg.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if cfg.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if cfg.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if cfg.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if cfg.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	return missing
}
