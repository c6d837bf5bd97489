package config

import (
	"os"
)

type GlobalConfig struct {
	ServerPort string
	LogLevel   string // debug, info, warn, error
	GinMode    string
}

func LoadGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		ServerPort: GetEnvOrDefault("PORT", "5000"),
		LogLevel:   GetEnvOrDefault("LOG_LEVEL", "info"),
		GinMode:    GetEnvOrDefault("GIN_MODE", "release"),
	}
}

// GetEnvOrDefault retrieves the value or returns default if not set or empty.
func GetEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
