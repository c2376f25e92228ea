package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string
	TLSCert   string
	TLSKey    string
	TokenKey  []byte
	StaticDir string

	PrefsBackend string // memory, postgres or redis
	DatabaseURL  string
	RedisAddr    string

	RateLimit float64 // requests per second per client IP
	RateBurst int
}

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, defaults applied.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:         valueOr(getenv("ADDR"), ":8080"),
		TLSCert:      strings.TrimSpace(getenv("TLS_CERT")),
		TLSKey:       strings.TrimSpace(getenv("TLS_KEY")),
		StaticDir:    valueOr(getenv("STATIC_DIR"), "./static"),
		PrefsBackend: strings.ToLower(valueOr(getenv("PREFS_BACKEND"), BackendMemory)),
		DatabaseURL:  strings.TrimSpace(getenv("DATABASE_URL")),
		RedisAddr:    valueOr(getenv("REDIS_ADDR"), "localhost:6379"),
		RateLimit:    5,
		RateBurst:    10,
	}

	key := getenv("TOKEN_KEY")
	if key == "" {
		return Config{}, errors.New("TOKEN_KEY environment variable is not set")
	}
	cfg.TokenKey = []byte(key)

	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		return Config{}, errors.New("TLS_CERT and TLS_KEY must be set together")
	}

	switch cfg.PrefsBackend {
	case BackendMemory, BackendRedis:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required for the postgres backend")
		}
	default:
		return Config{}, fmt.Errorf("unknown PREFS_BACKEND %q", cfg.PrefsBackend)
	}

	if v := strings.TrimSpace(getenv("RATE_LIMIT")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT %q", v)
		}
		cfg.RateLimit = f
	}
	if v := strings.TrimSpace(getenv("RATE_BURST")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid RATE_BURST %q", v)
		}
		cfg.RateBurst = n
	}

	return cfg, nil
}

func (c Config) TLS() bool {
	return c.TLSCert != ""
}

// MustLoad is Load for main: configuration errors are fatal.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}
	return cfg
}

func valueOr(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}
