package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	Addr        string
	ApiURL      string
	ConfigPath  string
	HttpTimeout time.Duration
}

// Load reads an optional .env file and then the environment.
func Load() Config {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	return Config{
		Env:         getEnv("APP_ENV", "dev"),
		Addr:        getEnv("USERDESK_ADDR", ":8080"),
		ApiURL:      getEnv("USERDESK_API_URL", "http://localhost:8081"),
		ConfigPath:  getEnv("USERDESK_CONFIG", "operators.json"),
		HttpTimeout: getEnvDuration("USERDESK_HTTP_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("Invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
