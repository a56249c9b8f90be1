package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"spendwise/internal/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application configuration
type Config struct {
	Env string

	// Server
	Port       string
	PublicURL  string
	CORSOrigin string

	// Database
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBPath         string
	MigrationsPath string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Uploads
	UploadDir      string
	MaxUploadBytes int64
}

// LoadEnvFile reads the given env files, or .env when none are named, into
// the process environment. Variables already set are not overridden. Call it
// before logger.Init so ENV from the file selects the logger.
func LoadEnvFile(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// Load loads configuration from environment variables, reading an optional
// .env file first.
func Load() (*Config, error) {
	if err := LoadEnvFile(); err != nil {
		logger.Get().Debug(".env file not found, using process environment")
	}

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		Port:       getEnv("PORT", "8000"),
		PublicURL:  getEnv("PUBLIC_URL", "http://localhost:8000"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),

		DBDriver:       getEnv("DB_DRIVER", DriverPostgres),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "spendwise"),
		DBPassword:     getEnv("DB_PASSWORD", "spendwise"),
		DBName:         getEnv("DB_NAME", "spendwise"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		DBPath:         getEnv("DB_PATH", "spendwise.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}

	expStr := getEnv("JWT_EXPIRES_IN", "720h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil || expDur <= 0 {
		logger.Get().Warnf("invalid JWT_EXPIRES_IN value %q, falling back to 720h", expStr)
		expDur = 30 * 24 * time.Hour
	}
	cfg.JWTExpirationDur = expDur

	maxMB, err := strconv.Atoi(getEnv("MAX_UPLOAD_MB", "5"))
	if err != nil || maxMB <= 0 {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_MB: must be a positive integer")
	}
	cfg.MaxUploadBytes = int64(maxMB) << 20

	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use postgres or sqlite)", cfg.DBDriver)
	}

	if cfg.Env == "production" && cfg.JWTSecret == "fallback-secret-key-for-dev-only" {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}

// PostgresURL returns the connection URL used by the migration tool.
// Credentials are escaped so passwords may contain reserved characters.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

// PostgresDSN returns the key/value DSN used by the GORM postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
