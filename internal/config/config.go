package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const DefaultTranslateEndpoint = "https://translation.googleapis.com/language/translate/v2"

type Config struct {
	AppPort     string
	DatabaseURL string
	DBMaxConns  int32

	LogLevel  string
	LogFormat string

	// Translation vendor. An empty key keeps the proxy in echo mode.
	TranslateAPIKey   string
	TranslateEndpoint string
	TranslateTimeout  time.Duration

	// Rate limiting is disabled when RedisAddr is empty.
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	APIRateLimit   int
	APIRateWindow  time.Duration
	LambdaFunction string
}

// Load reads configuration from the environment (and .env when present).
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:     getEnv("APP_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMaxConns:  int32(getInt("DB_MAX_CONNS", 4)),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", defaultLogFormat()),

		TranslateAPIKey:   os.Getenv("GOOGLE_TRANSLATE_API_KEY"),
		TranslateEndpoint: getEnv("TRANSLATE_ENDPOINT", DefaultTranslateEndpoint),
		TranslateTimeout:  getDuration("TRANSLATE_TIMEOUT", 10*time.Second),

		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getInt("REDIS_DB", 0),
		APIRateLimit:   getInt("API_RATE_LIMIT", 120),
		APIRateWindow:  time.Duration(getInt("API_RATE_WINDOW_SECONDS", 60)) * time.Second,
		LambdaFunction: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
	}
}

// InLambda reports whether the process runs inside the Lambda runtime.
func (c *Config) InLambda() bool {
	return c.LambdaFunction != ""
}

// CloudWatch parses JSON lines, terminals want text.
func defaultLogFormat() string {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		return "json"
	}
	return "text"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
