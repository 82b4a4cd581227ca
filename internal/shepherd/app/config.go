package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer         string        // Optional: issuer claim for tokens (default: shepherd)
	BootstrapToken string        // Optional: token required to perform bootstrap
	NumKeys        int           // Optional: number of signing keys to generate (default: 3, min: 1, max: 10)
	AccessTokenTTL time.Duration // Optional: access token lifetime (default: 1h)

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./shepherd.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	RoleCatalogFile      string        // Optional: YAML file replacing the predefined role catalog
	HousekeepingSchedule string        // Optional: cron spec for event status housekeeping (default: @every 5m)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               getEnvOrDefault("SHEPHERD_ISSUER", "shepherd"),
		BootstrapToken:       os.Getenv("BOOTSTRAP_TOKEN"),
		NumKeys:              getEnvIntOrDefault("SHEPHERD_NUM_KEYS", 0), // 0 lets the key manager pick
		AccessTokenTTL:       getEnvDurationOrDefault("ACCESS_TOKEN_TTL", time.Hour),
		DatabaseFile:         getEnvOrDefault("SHEPHERD_DATABASE_FILE", "shepherd.db"),
		PepperFile:           getEnvOrDefault("SHEPHERD_PEPPER_FILE", "pepper"),
		RoleCatalogFile:      os.Getenv("ROLE_CATALOG_FILE"),
		HousekeepingSchedule: getEnvOrDefault("HOUSEKEEPING_SCHEDULE", "@every 5m"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Go duration syntax first ("1h", "30m", "90s").
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
