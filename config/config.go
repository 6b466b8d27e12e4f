package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"

	// FallbackJWTSecret is used when JWT_SECRET is unset. Deployments must override it.
	FallbackJWTSecret = "secret_key"
)

type Config struct {
	Port          string
	Env           string
	GinMode       string
	MongoURI      string
	MongoDatabase string
	StoreDriver   string

	JWTSecret           string
	UsingFallbackSecret bool
	TokenTTL            time.Duration

	AllowedOrigins []string
	RequireAuth    bool

	// DotEnvLoaded reports whether a .env file was read.
	DotEnvLoaded bool
}

func Load() *Config {
	// Load .env file if it exists
	dotEnvLoaded := godotenv.Load() == nil

	secret := getEnv("JWT_SECRET", "")
	fallback := secret == ""
	if fallback {
		secret = FallbackJWTSecret
	}

	return &Config{
		Port:                getEnv("PORT", "3000"),
		Env:                 getEnv("APP_ENV", "development"),
		GinMode:             getEnv("GIN_MODE", "debug"),
		MongoURI:            getEnv("MONGODB_URI", ""),
		MongoDatabase:       getEnv("MONGODB_DATABASE", "cnapp"),
		StoreDriver:         getEnv("STORE_DRIVER", DriverMongo),
		JWTSecret:           secret,
		UsingFallbackSecret: fallback,
		TokenTTL:            getEnvAsDuration("TOKEN_TTL", time.Hour),
		AllowedOrigins:      getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"https://cnappp.netlify.app"}),
		RequireAuth:         getEnvAsBool("REQUIRE_AUTH", false),
		DotEnvLoaded:        dotEnvLoaded,
	}
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGODB_URI must be set")
		}
	case DriverMemory:
	default:
		return errors.New("STORE_DRIVER must be one of: mongo, memory")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	for _, origin := range c.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ALLOWED_ORIGINS: %q must start with http:// or https://", origin)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
