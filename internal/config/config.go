package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the workerguard-console runtime configuration.
type Config struct {
	Backend struct {
		BaseURL string
		Timeout time.Duration
		Retries int
	}
	View struct {
		Center string // default center selection
		Month  string // YYYY-MM
		Date   string // YYYY-MM-DD
	}
	Log struct {
		Level  string
		Format string
	}
}

func Load() *Config {
	cfg := &Config{}
	cfg.Backend.BaseURL = getEnv("WG_BACKEND_URL", "http://127.0.0.1:8000")
	cfg.Backend.Timeout = time.Duration(parseInt(getEnv("WG_HTTP_TIMEOUT_SECONDS", "30"), 30)) * time.Second
	cfg.Backend.Retries = parseInt(getEnv("WG_HTTP_RETRIES", "3"), 3)

	cfg.View.Center = getEnv("WG_DEFAULT_CENTER", "서울 센터")
	cfg.View.Month = getEnv("WG_TARGET_MONTH", time.Now().Format("2006-01"))
	cfg.View.Date = getEnv("WG_TARGET_DATE", time.Now().Format("2006-01-02"))

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
