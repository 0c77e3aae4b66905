package config

import (
	"os"
	"strconv"
)

type Config struct {
	// App
	AppEnv   string
	Port     string
	LogLevel string

	// ClickUp
	ClickUpToken   string
	ClickUpBaseURL string

	// Gateway auth
	JWTSecret     string
	AdminUsername string
	AdminPassword string

	// ClickUp HTTP client
	RequestTimeoutSeconds int
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		Port:     getEnv("PORT", "8001"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ClickUpToken:   getEnv("CLICKUP_TOKEN", ""),
		ClickUpBaseURL: getEnv("CLICKUP_BASE_URL", ""),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		RequestTimeoutSeconds: getEnvInt("REQUEST_TIMEOUT_SECONDS", 20),
	}

	return cfg, nil
}

// getEnv returns environment variable or default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns int from env or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
