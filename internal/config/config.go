package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	Port     string
	DataDir  string
	Env      string
	LogLevel string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by user) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8735")
	cfg.DataDir = getEnv("SRECHA_DATA_DIR", defaultDataDir())
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	return cfg
}

// defaultDataDir mirrors the desktop shell's application data directory.
func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(base, "srecha-invoice")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
