package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings the ganjoor CLI and reader need.
type Config struct {
	BaseURL  string        `toml:"base_url" env:"BASE_URL" validate:"required,http_url"`
	Language string        `toml:"language" env:"LANGUAGE" validate:"required"`
	AppName  string        `toml:"app_name" env:"APP_NAME" validate:"required"`
	Username string        `toml:"username" env:"USERNAME"`
	Password string        `toml:"-" env:"PASSWORD"`
	Timeout  time.Duration `toml:"timeout" env:"TIMEOUT" validate:"gte=0"`
	Cache    Cache         `toml:"cache" envPrefix:"CACHE_"`
	Rate     Rate          `toml:"rate" envPrefix:"RATE_"`
}

// Cache configures the on-disk response cache.
type Cache struct {
	Enabled bool          `toml:"enabled" env:"ENABLED"`
	Dir     string        `toml:"dir" env:"DIR"`
	TTL     time.Duration `toml:"ttl" env:"TTL" validate:"gte=0"`
}

// Rate configures client-side request pacing. Zero disables it.
type Rate struct {
	RequestsPerSecond float64 `toml:"requests_per_second" env:"LIMIT" validate:"gte=0"`
}

const (
	envPrefix = "GANJOOR_"

	defaultConfigPath = "~/.config/ganjoor/config.toml"
	defaultBaseURL    = "https://ganjgah.ir"
	defaultLanguage   = "fa-IR"
	defaultAppName    = "ganjoor-go"
	defaultTimeout    = 15 * time.Second
	defaultCacheDir   = "~/.cache/ganjoor"
	defaultCacheTTL   = 24 * time.Hour
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		BaseURL:  defaultBaseURL,
		Language: defaultLanguage,
		AppName:  defaultAppName,
		Timeout:  defaultTimeout,
		Cache: Cache{
			Enabled: true,
			Dir:     mustExpand(defaultCacheDir),
			TTL:     defaultCacheTTL,
		},
	}
}

// fileConfig mirrors the TOML layout. Durations are strings in the file.
type fileConfig struct {
	BaseURL  string `toml:"base_url"`
	Language string `toml:"language"`
	AppName  string `toml:"app_name"`
	Username string `toml:"username"`
	Timeout  string `toml:"timeout"`
	Cache    struct {
		Enabled *bool  `toml:"enabled"`
		Dir     string `toml:"dir"`
		TTL     string `toml:"ttl"`
	} `toml:"cache"`
	Rate struct {
		RequestsPerSecond float64 `toml:"requests_per_second"`
	} `toml:"rate"`
}

// Load reads the config file at path (or the default location), applies GANJOOR_*
// environment overrides and validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := readFile(resolved, &cfg); err != nil {
		return Config{}, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Cache.Dir = mustExpand(cfg.Cache.Dir)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	setString(&cfg.BaseURL, raw.BaseURL)
	setString(&cfg.Language, raw.Language)
	setString(&cfg.AppName, raw.AppName)
	setString(&cfg.Username, raw.Username)
	setString(&cfg.Cache.Dir, raw.Cache.Dir)
	if raw.Cache.Enabled != nil {
		cfg.Cache.Enabled = *raw.Cache.Enabled
	}
	if err := setDuration(&cfg.Timeout, "timeout", raw.Timeout); err != nil {
		return err
	}
	if err := setDuration(&cfg.Cache.TTL, "cache.ttl", raw.Cache.TTL); err != nil {
		return err
	}
	cfg.Rate.RequestsPerSecond = raw.Rate.RequestsPerSecond
	return nil
}

func setString(dst *string, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		*dst = trimmed
	}
}

func setDuration(dst *time.Duration, field, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return fmt.Errorf("parse config: %s: %w", field, err)
	}
	*dst = d
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks a Config for values the client cannot work with.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, friendlyMessage(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func friendlyMessage(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "http_url":
		return field + " must be an http(s) URL"
	case "gte":
		return field + " must not be negative"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
