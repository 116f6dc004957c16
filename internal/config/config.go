package config

import (
	"errors"
	"os"
	"strings"
)

// Config is built once at startup and passed by reference; nothing reads the
// environment after Load returns.
type Config struct {
	MongoURI       string
	Database       string
	JWTSecret      string
	Port           string
	Environment    string
	AllowedOrigins []string
}

func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	origins := []string{"http://localhost:3000"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}

	return &Config{
		MongoURI:       env("MONGO_URI", "mongodb://localhost:27017"),
		Database:       env("MONGO_DB", "medical_booking"),
		JWTSecret:      secret,
		Port:           env("PORT", "5000"),
		Environment:    env("ENVIRONMENT", "development"),
		AllowedOrigins: origins,
	}, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
