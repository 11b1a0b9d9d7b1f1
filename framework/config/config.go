package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the central typed configuration struct.
type Config struct {
	App  AppConfig
	Log  LogConfig
	HTTP HTTPConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
	URL   string
	Port  string
}

// LogConfig drives the zap logger built by the logging package.
type LogConfig struct {
	Level      string // debug | info | warn | error
	Format     string // console | json
	Output     string // stdout | file | both
	File       string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
}

// HTTPConfig holds server timeouts.
type HTTPConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:  env("APP_NAME", "Slarb"),
			Env:   env("APP_ENV", "local"),
			Debug: envBool("APP_DEBUG", true),
			URL:   env("APP_URL", "http://localhost"),
			Port:  env("APP_PORT", "8000"),
		},
		Log: LogConfig{
			Level:      env("LOG_LEVEL", "info"),
			Format:     env("LOG_FORMAT", "console"),
			Output:     env("LOG_OUTPUT", "stdout"),
			File:       env("LOG_FILE", "storage/logs/slarb.log"),
			MaxSize:    GetInt("LOG_MAX_SIZE", 100),
			MaxBackups: GetInt("LOG_MAX_BACKUPS", 7),
			MaxAge:     GetInt("LOG_MAX_AGE", 30),
		},
		HTTP: HTTPConfig{
			ReadTimeout:     envSeconds("HTTP_READ_TIMEOUT", 15),
			WriteTimeout:    envSeconds("HTTP_WRITE_TIMEOUT", 15),
			ShutdownTimeout: envSeconds("HTTP_SHUTDOWN_TIMEOUT", 10),
		},
	}
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envSeconds(key string, fallback int) time.Duration {
	return time.Duration(GetInt(key, fallback)) * time.Second
}
