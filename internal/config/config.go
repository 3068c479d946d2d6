package config

import (
	"fmt"
	"os"
)

// Config is the process configuration, read once at startup from the
// environment (a .env file is loaded first in dev).
type Config struct {
	Addr string
	Env  string // "dev" or "prod"

	DBDSN string

	SessionSecret string
	CookieSecret  string
	SecureCookies bool

	AdminPasswordHash string
}

func Load() (Config, error) {
	cfg := Config{
		Addr:              envOr("ADDR", ":8080"),
		Env:               envOr("APP_ENV", "dev"),
		DBDSN:             os.Getenv("DB_DSN"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		CookieSecret:      os.Getenv("COOKIE_SECRET"),
		SecureCookies:     envOr("SECURE_COOKIES", "false") == "true",
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	if cfg.DBDSN == "" {
		return Config{}, fmt.Errorf("config: DB_DSN is required")
	}
	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("config: SESSION_SECRET is required")
	}
	if cfg.CookieSecret == "" {
		return Config{}, fmt.Errorf("config: COOKIE_SECRET is required")
	}
	if cfg.AdminPasswordHash == "" {
		return Config{}, fmt.Errorf("config: ADMIN_PASSWORD_HASH is required")
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
