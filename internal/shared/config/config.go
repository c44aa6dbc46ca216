package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultClassifierTimeout bounds one classifier call.
const DefaultClassifierTimeout = 10 * time.Second

// Config holds application configuration.
type Config struct {
	Port              string
	Env               string
	CORSAllowOrigin   []string
	ClassifierURL     string
	ClassifierAPIKey  string
	ClassifierTimeout time.Duration
	RedisURL          string
	RateLimitRPS      float64
	RateLimitBurst    int
	ScoringConfigPath string
	Scoring           Scoring
}

// Load reads configuration from environment variables with sensible defaults.
// The scoring file, when configured, must parse and validate.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		Env:               normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin:   splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		ClassifierURL:     strings.TrimSpace(os.Getenv("CLASSIFIER_URL")),
		ClassifierAPIKey:  os.Getenv("CLASSIFIER_API_KEY"),
		ClassifierTimeout: time.Duration(getEnvInt("CLASSIFIER_TIMEOUT_SECONDS", int(DefaultClassifierTimeout/time.Second))) * time.Second,
		RedisURL:          strings.TrimSpace(os.Getenv("REDIS_URL")),
		RateLimitRPS:      getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:    getEnvInt("RATE_LIMIT_BURST", 10),
		ScoringConfigPath: strings.TrimSpace(os.Getenv("SCORING_CONFIG_PATH")),
		Scoring:           DefaultScoring(),
	}

	if cfg.ScoringConfigPath != "" {
		scoring, err := LoadScoring(cfg.ScoringConfigPath)
		if err != nil {
			return Config{}, err
		}
		cfg.Scoring = scoring
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

// UseRemoteClassifier reports whether a model-serving endpoint is configured.
func (c Config) UseRemoteClassifier() bool {
	return c.ClassifierURL != ""
}
