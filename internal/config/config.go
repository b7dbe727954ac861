// Package config loads server settings from an optional YAML file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

// DevJWTSecret is used when JWT_SECRET is unset. Never run production with it.
const DevJWTSecret = "naijatax-dev-secret"

// Config holds everything cmd/server needs to start.
type Config struct {
	Port       int    `yaml:"port"`
	DBPath     string `yaml:"db_path"`
	StaticPath string `yaml:"static_path"`
	BandsPath  string `yaml:"bands_path"`
	LogLevel   string `yaml:"log_level"`

	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`

	RedisAddr       string        `yaml:"redis_addr"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	CacheMaxEntries int           `yaml:"cache_max_entries"`

	GeminiAPIKey string `yaml:"gemini_api_key"`
	GeminiModel  string `yaml:"gemini_model"`

	// RateLimitPerMinute is the per-client RPC allowance; 0 disables limiting.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Port:               8080,
		DBPath:             "./data/naijatax.db",
		StaticPath:         "./static",
		LogLevel:           "info",
		JWTSecret:          DevJWTSecret,
		TokenTTL:           24 * time.Hour,
		CacheTTL:           time.Hour,
		CacheMaxEntries:    10000,
		GeminiModel:        "gemini-2.0-flash",
		RateLimitPerMinute: 60,
	}
}

// Load reads CONFIG_PATH (if set) and then the environment.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if path := getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	env := envReader{getenv: getenv}
	env.int("PORT", &cfg.Port)
	env.string("DB_PATH", &cfg.DBPath)
	env.string("STATIC_PATH", &cfg.StaticPath)
	env.string("BANDS_PATH", &cfg.BandsPath)
	env.string("LOG_LEVEL", &cfg.LogLevel)
	env.string("JWT_SECRET", &cfg.JWTSecret)
	env.duration("TOKEN_TTL", &cfg.TokenTTL)
	env.string("REDIS_ADDR", &cfg.RedisAddr)
	env.duration("CACHE_TTL", &cfg.CacheTTL)
	env.int("CACHE_MAX_ENTRIES", &cfg.CacheMaxEntries)
	env.string("GEMINI_API_KEY", &cfg.GeminiAPIKey)
	env.string("GEMINI_MODEL", &cfg.GeminiModel)
	env.int("RATE_LIMIT_PER_MINUTE", &cfg.RateLimitPerMinute)
	if env.err != nil {
		return Config{}, env.err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("db path is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt secret is required"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("token ttl must be positive"))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, errors.New("cache ttl must not be negative"))
	}
	if c.RateLimitPerMinute < 0 {
		errs = append(errs, errors.New("rate limit must not be negative"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// envReader overrides fields from set variables and keeps the first parse error.
type envReader struct {
	getenv func(string) string
	err    error
}

func (e *envReader) string(key string, dst *string) {
	if v := e.getenv(key); v != "" {
		*dst = v
	}
}

func (e *envReader) int(key string, dst *int) {
	v := e.getenv(key)
	if v == "" || e.err != nil {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.err = fmt.Errorf("%s: %w", key, err)
		return
	}
	*dst = n
}

func (e *envReader) duration(key string, dst *time.Duration) {
	v := e.getenv(key)
	if v == "" || e.err != nil {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.err = fmt.Errorf("%s: %w", key, err)
		return
	}
	*dst = d
}
