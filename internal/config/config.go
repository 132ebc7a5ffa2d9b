package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port    string
	Env     string
	LogLevel string

	// Google Calendar collaborator
	GoogleCredentialsJSON string
	CalendarID            string

	// Scheduling policy
	Timezone    string
	WorkStart   string
	WorkEnd     string
	SlotMinutes int

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "3000"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		GoogleCredentialsJSON: getEnv("GOOGLE_CREDENTIALS", ""),
		CalendarID:            getEnv("PRIMARY_CALENDAR_ID", "primary"),

		Timezone:    getEnv("TIMEZONE", "Europe/Madrid"),
		WorkStart:   getEnv("WORK_START", "09:00"),
		WorkEnd:     getEnv("WORK_END", "18:00"),
		SlotMinutes: getEnvAsInt("SLOT_MINUTES", 30),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", nil),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList retrieves a comma-separated environment variable as a slice.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	var values []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
