package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string // empty: compiled-in catalogue

	OpenAIKey         string // empty: /api/chat answers with a configuration error
	OpenAIModel       string
	OpenAIBaseURL     string
	OpenAIMaxTokens   int
	OpenAITemperature float32

	RateLimitMax    int
	RateLimitWindow time.Duration

	AllowedOrigins []string
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:          getenv("PORT", "5000"),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		OpenAIKey:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:   getenv("OPENAI_MODEL", "gpt-4"),
		OpenAIBaseURL: strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
	}

	var err error
	if cfg.OpenAIMaxTokens, err = getInt("OPENAI_MAX_TOKENS", 300); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitMax, err = getInt("RATE_LIMIT_MAX", 100); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitMax <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", cfg.RateLimitMax)
	}

	temp, err := strconv.ParseFloat(getenv("OPENAI_TEMPERATURE", "0.7"), 32)
	if err != nil {
		return Config{}, fmt.Errorf("OPENAI_TEMPERATURE: %w", err)
	}
	cfg.OpenAITemperature = float32(temp)

	if cfg.RateLimitWindow, err = time.ParseDuration(getenv("RATE_LIMIT_WINDOW", "15m")); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_WINDOW: %w", err)
	}
	if cfg.RateLimitWindow <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", cfg.RateLimitWindow)
	}

	for _, o := range strings.Split(getenv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
