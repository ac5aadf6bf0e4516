package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// Config holds everything the commands need to reach the store and serve requests.
type Config struct {
	Driver     string
	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string
	SQLitePath string
	Port       string
	GinLogging bool
	LogLevel   slog.Level
}

// Load reads an optional .env file and then the process environment.
//
// Usage example on the command line:
// > DB_DRIVER=mysql DBHOST=localhost:3306 DBUSER=dirk DBPWD=bullo92 PORT=8080 go run main.go
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Driver:     GetEnv("DB_DRIVER", DriverSQLite),
		DBUser:     GetEnv("DBUSER", ""),
		DBPassword: GetEnv("DBPWD", ""),
		DBHost:     GetEnv("DBHOST", "localhost:3306"),
		DBName:     GetEnv("DBNAME", "test"),
		SQLitePath: GetEnv("SQLITE_PATH", "contacts.db"),
		Port:       GetEnv("PORT", "8080"),
		GinLogging: !strings.EqualFold(GetEnv("GIN_LOGGING", "on"), "off"),
	}

	level, err := ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("could not parse PORT env variable: %w", err)
	}
	switch cfg.Driver {
	case DriverMySQL:
		if cfg.DBUser == "" {
			return Config{}, fmt.Errorf("DBUSER is required for driver %s", cfg.Driver)
		}
	case DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
	return cfg, nil
}

// GetEnv returns the value of the environment variable key, or defaultValue if it is unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ParseLevel maps debug, info, warn and error to the corresponding slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}

// NewLogger returns a text logger writing to stderr at the given level.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
