package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/doctor-booking/internal/timezone"
)

type Config struct {
	ServerPort     string
	Env            string
	LogLevel       string
	Timezone       string
	RedisURL       string
	AuditQueueSize int
	CORSOrigins    []string
}

// Load reads the environment, after merging an optional .env file that
// never overrides variables already set.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Timezone:       getEnv("TIMEZONE", timezone.DefaultTimezone),
		RedisURL:       getEnv("REDIS_URL", ""),
		AuditQueueSize: getEnvInt("AUDIT_QUEUE_SIZE", 100),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "")),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt keeps unparsable values visible to Validate as -1.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return -1
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("SERVER_PORT must be numeric, got %q", c.ServerPort)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if !timezone.IsValid(c.Timezone) {
		return fmt.Errorf("TIMEZONE %q is not a known location", c.Timezone)
	}
	if c.AuditQueueSize <= 0 {
		return fmt.Errorf("AUDIT_QUEUE_SIZE must be a positive integer")
	}
	return nil
}
