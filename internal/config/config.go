package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort  string
	LogLevel string
	LogMode  string
	LogDir   string

	RemoteBaseURL string
	RemoteRPS     float64
	UserID        string

	TokenStorePath       string
	TokenStorePassphrase string
	StagingDir           string

	CORSOrigins []string

	RetryMaxAttempts int
	BreakerEnabled   bool
}

func Load() Config {
	_ = godotenv.Load(".env")

	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),
		LogMode:  mustEnv("LOG_MODE", "prod"),
		LogDir:   mustEnv("LOG_DIR", "logs"),

		RemoteBaseURL: mustEnv("DOCVAULT_BASE_URL", "https://apis.allsoft.co/api/documentManagement"),
		RemoteRPS:     mustEnvFloat("DOCVAULT_RPS", 5),
		UserID:        mustEnv("DOCVAULT_USER_ID", "nitin"),

		TokenStorePath:       mustEnv("TOKEN_STORE_PATH", "./data/token.bin"),
		TokenStorePassphrase: mustEnv("TOKEN_STORE_PASSPHRASE", "docvault-local"),
		StagingDir:           mustEnv("STAGING_DIR", "./data/staging"),

		CORSOrigins: splitList(mustEnv("CORS_ORIGINS", "*")),

		RetryMaxAttempts: mustEnvInt("RETRY_MAX_ATTEMPTS", 3),
		BreakerEnabled:   mustEnvBool("BREAKER_ENABLED", true),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
