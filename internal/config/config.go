// Package config reads process configuration from the environment. Outside
// production a local .env file is loaded first.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvProduction = "production"
	DefaultPort   = "8080"
)

var ErrMissingEnv = errors.New("missing env var")

type Config struct {
	Env            string
	Port           string
	SessionSecret  string
	DatabaseURL    string
	AllowedOrigins []string
	AssetBaseURL   string
	SecureCookies  bool
}

// R2 holds the object storage settings used by sync-assets.
type R2 struct {
	AccessKey     string
	SecretKey     string
	Bucket        string
	Endpoint      string
	PublicBaseURL string
}

func (c Config) Production() bool {
	return c.Env == EnvProduction
}

// LoadDotEnv loads .env when not running in production. A missing file is fine.
func LoadDotEnv() {
	if os.Getenv("APP_ENV") != EnvProduction {
		_ = godotenv.Load()
	}
}

func Load() (Config, error) {
	LoadDotEnv()

	if err := requireEnv("SESSION_SECRET"); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Env:            os.Getenv("APP_ENV"),
		Port:           getenv("PORT", DefaultPort),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		AssetBaseURL:   strings.TrimRight(os.Getenv("ASSET_BASE_URL"), "/"),
	}

	secure, err := parseBool("SECURE_COOKIES", cfg.Production())
	if err != nil {
		return Config{}, err
	}
	cfg.SecureCookies = secure

	return cfg, nil
}

func LoadR2() (R2, error) {
	LoadDotEnv()

	if err := requireEnv(
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	); err != nil {
		return R2{}, err
	}

	return R2{
		AccessKey:     os.Getenv("R2_ACCESS_KEY"),
		SecretKey:     os.Getenv("R2_SECRET_KEY"),
		Bucket:        os.Getenv("R2_BUCKET_NAME"),
		Endpoint:      os.Getenv("R2_ENDPOINT"),
		PublicBaseURL: strings.TrimRight(os.Getenv("R2_PUBLIC_BASE_URL"), "/"),
	}, nil
}

func requireEnv(keys ...string) error {
	var missing []string
	for _, k := range keys {
		if os.Getenv(k) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
