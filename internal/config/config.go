package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	MongoURI        string
	DBName          string
	StoreDriver     string
	Port            string
	AllowedOrigins  []string
	RateLimitMax    int
	RateLimitWindow time.Duration
	RequestTimeout  time.Duration
	LogLevel        string
}

// Load reads .env (when present) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	var cfg Config
	var err error

	cfg.StoreDriver = strings.ToLower(getEnv("STORE_DRIVER", DriverMongo))
	switch cfg.StoreDriver {
	case DriverMongo:
		if cfg.MongoURI, err = getRequiredEnv("MONGODB_URI"); err != nil {
			return cfg, err
		}
	case DriverMemory:
		cfg.MongoURI = os.Getenv("MONGODB_URI")
	default:
		return cfg, &Error{message: "invalid STORE_DRIVER: " + cfg.StoreDriver}
	}

	cfg.DBName = getEnv("DB_NAME", "MarkMe")
	cfg.Port = getEnv("PORT", "3000")
	cfg.AllowedOrigins = splitList(os.Getenv("ALLOWED_ORIGINS"))
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	if cfg.RateLimitMax, err = getEnvInt("RATE_LIMIT_MAX", 100); err != nil {
		return cfg, err
	}
	if cfg.RateLimitMax <= 0 {
		return cfg, &Error{message: "RATE_LIMIT_MAX must be positive"}
	}
	if cfg.RateLimitWindow, err = getEnvDuration("RATE_LIMIT_WINDOW", 15*time.Minute); err != nil {
		return cfg, err
	}
	if cfg.RequestTimeout, err = getEnvDuration("REQUEST_TIMEOUT", 5*time.Second); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) Debug() bool {
	return strings.EqualFold(strings.TrimSpace(c.LogLevel), "debug")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getRequiredEnv(key string) (string, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return "", &Error{message: "missing required environment variable: " + key}
	}
	return value, nil
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, &Error{message: "invalid int for " + key + ": " + err.Error()}
	}
	return parsed, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, &Error{message: "invalid duration for " + key + ": " + err.Error()}
	}
	return parsed, nil
}

type Error struct {
	message string
}

func (e *Error) Error() string {
	return e.message
}

var _ error = (*Error)(nil)
