package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	DBPath        string
	CloudDSN      string
	App           AppConfig
	Pool          PoolConfig
}

// AppConfig holds HTTP server settings
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	CORSOrigins []string
}

type PoolConfig struct {
	Workers   int
	QueueSize int
}

// LoadConfig reads .env (when present) and the environment. The bot token is
// only required by the bot command, see ValidateBot.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("HTTP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_PORT: %w", err)
	}
	workers, err := strconv.Atoi(getEnv("WORKERS", "4"))
	if err != nil || workers < 1 {
		return nil, fmt.Errorf("invalid WORKERS: %q", os.Getenv("WORKERS"))
	}
	queue, err := strconv.Atoi(getEnv("QUEUE_SIZE", "32"))
	if err != nil || queue < 0 {
		return nil, fmt.Errorf("invalid QUEUE_SIZE: %q", os.Getenv("QUEUE_SIZE"))
	}

	return &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DBPath:        getEnv("DB_PATH", "driver-buddy.db"),
		CloudDSN:      os.Getenv("CLOUD_DATABASE_URL"),
		App: AppConfig{
			Port:        port,
			Env:         getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			CORSOrigins: getEnvSlice("CORS_ORIGINS", "*"),
		},
		Pool: PoolConfig{Workers: workers, QueueSize: queue},
	}, nil
}

// ValidateBot checks what the Telegram bot needs to start.
func (c *Config) ValidateBot() error {
	if c.TelegramToken == "" {
		return ErrNoToken{}
	}
	return nil
}

// CloudEnabled reports whether a cloud document store is configured.
func (c *Config) CloudEnabled() bool {
	return c.CloudDSN != ""
}

type ErrNoToken struct{}

func (e ErrNoToken) Error() string {
	return "TELEGRAM_TOKEN is not set"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, fallback), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
