package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisHost string
	RedisPort string
	RedisDB   int

	LayoutCacheTTL  time.Duration
	IsolationBuffer int
	ShutdownTimeout time.Duration
}

func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// LoadEnvFile reads key=value pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load builds a Config from the environment, falling back to local
// development defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:   getenv("HTTP_ADDR", ":8080"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "seats_suggestions"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),
		RedisHost:  getenv("REDIS_HOST", "localhost"),
		RedisPort:  getenv("REDIS_PORT", "6379"),
	}

	var err error
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.LayoutCacheTTL, err = getDuration("LAYOUT_CACHE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.IsolationBuffer, err = getInt("ISOLATION_BUFFER", 1); err != nil {
		return Config{}, err
	}
	if cfg.IsolationBuffer < 0 {
		return Config{}, fmt.Errorf("ISOLATION_BUFFER must not be negative, got %d", cfg.IsolationBuffer)
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %q", key, v)
	}
	return n, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q", key, v)
	}
	return d, nil
}
