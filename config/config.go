package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"cookbook/globals"

	"github.com/joho/godotenv"
)

// Config holds every setting read from the environment at startup.
type Config struct {
	Env             string
	Port            string
	MongoURI        string
	MongoDatabase   string
	RedisURL        string
	JWTSecret       []byte
	RateLimit       int
	RequestTimeout  time.Duration
	DefaultAuthor   string
	PublicBaseURL   string
	KnownLanguages  []string
	ShutdownTimeout time.Duration
}

var defaultLanguages = []string{"en", "fr", "es", "de", "it", "pt"}

// Load reads .env (when present) and then the process environment.
// The bool reports whether a .env file was found.
func Load() (Config, bool, error) {
	dotenv := godotenv.Load() == nil

	cfg := Config{
		Env:             getenv("APP_ENV", "development"),
		Port:            normalizePort(os.Getenv("PORT")),
		MongoURI:        firstNonEmpty(os.Getenv("MONGODB_URI"), os.Getenv("MONGOOSE_URI"), "mongodb://localhost:27017"),
		MongoDatabase:   getenv("MONGODB_DATABASE", "cookbook"),
		RedisURL:        os.Getenv("REDIS_URL"),
		JWTSecret:       []byte(getenv("JWT_SECRET", "your_secret_key")),
		DefaultAuthor:   getenv("DEFAULT_AUTHOR", globals.DefaultAuthor),
		PublicBaseURL:   strings.TrimRight(getenv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		KnownLanguages:  defaultLanguages,
		RateLimit:       20,
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}

	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, dotenv, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be a positive integer, got %q", v)
		}
		cfg.RateLimit = n
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, dotenv, fmt.Errorf("REQUEST_TIMEOUT must be a positive duration, got %q", v)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("KNOWN_LANGUAGES"); v != "" {
		cfg.KnownLanguages = splitList(v)
	}

	return cfg, dotenv, nil
}

// IsProduction reports whether APP_ENV selects production behaviour.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func normalizePort(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] != ':' {
		return ":" + port
	}
	return port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
