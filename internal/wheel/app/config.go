package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	PublicBaseURL string // Required in prod: external URL used for the Steam return_to
	SteamAPIKey   string // Required for Steam Web API features (proxies, recommendations)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./wheel.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	CookieSecure        bool          // Secure flag on session cookies (default: true outside dev)
	SessionTTL          time.Duration // Session cookie lifetime (default: 1h)
	RefreshTTL          time.Duration // Refresh token lifetime (default: 30 days)
}

func LoadConfig() Config {
	cfg := Config{
		PublicBaseURL:       getEnvOrDefault("WHEEL_PUBLIC_BASE_URL", "http://localhost:8080"),
		SteamAPIKey:         os.Getenv("STEAM_API_KEY"),
		DatabaseFile:        getEnvOrDefault("WHEEL_DATABASE_FILE", "wheel.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		SessionTTL:          getEnvDurationOrDefault("WHEEL_SESSION_TTL", time.Hour),
		RefreshTTL:          getEnvDurationOrDefault("WHEEL_REFRESH_TTL", 30*24*time.Hour),
	}

	// Dev runs over plain http; everywhere else the cookies demand TLS.
	cfg.CookieSecure = cfg.Env != "dev"
	if v := os.Getenv("WHEEL_COOKIE_SECURE"); v != "" {
		if secure, err := strconv.ParseBool(v); err == nil {
			cfg.CookieSecure = secure
		}
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
