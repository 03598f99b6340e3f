package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

type Config struct {
	Addr    string
	TLSCert string
	TLSKey  string

	// Auth is enabled when TokenKey is set.
	TokenKey          string
	AdminLogin        string
	AdminPasswordHash string

	RateLimit rate.Limit
	RateBurst int

	AllowedOrigin string

	LogFile  string
	LogLevel slog.Level
}

// Load reads .env files (if any) and then the environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	rps, err := getFloat("RATE_LIMIT_RPS", 5)
	if err != nil {
		return Config{}, err
	}
	burst, err := getInt("RATE_LIMIT_BURST", 10)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Addr:              getEnv("ANNULUS_ADDR", ":8080"),
		TLSCert:           os.Getenv("TLS_CERT"),
		TLSKey:            os.Getenv("TLS_KEY"),
		TokenKey:          os.Getenv("TOKEN_KEY"),
		AdminLogin:        getEnv("ADMIN_LOGIN", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		RateLimit:         rate.Limit(rps),
		RateBurst:         burst,
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", "*"),
		LogFile:           os.Getenv("ANNULUS_LOG_FILE"),
		LogLevel:          parseLogLevel(getEnv("ANNULUS_LOG_LEVEL", "INFO")),
	}
	if cfg.AuthEnabled() && cfg.AdminPasswordHash == "" {
		return Config{}, errors.New("TOKEN_KEY is set but ADMIN_PASSWORD_HASH is empty")
	}
	return cfg, nil
}

func (c Config) AuthEnabled() bool {
	return c.TokenKey != ""
}

func (c Config) TLSEnabled() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("%s: expected a positive number, got %q", key, val)
	}
	return f, nil
}

func getInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: expected a positive integer, got %q", key, val)
	}
	return n, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
