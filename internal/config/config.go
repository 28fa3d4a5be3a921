package config

import (
	"log"
	"os"
	"strings"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port         string
	MongoURI     string
	DBName       string
	TokenSecret  string
	StripeSecret string
	CORSOrigins  string
	Production   bool
}

// Load reads the environment into a Config. Missing required values are fatal
// so a misconfigured deployment fails at startup instead of on first request.
func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "8000"),
		MongoURI:     os.Getenv("DB_URI"),
		DBName:       getEnv("DB_NAME", "pro-12"),
		TokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecret: os.Getenv("PAYMENT_SECRET_KEY"),
		CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174"),
		Production:   strings.EqualFold(os.Getenv("APP_ENV"), "production"),
	}

	if cfg.MongoURI == "" {
		log.Fatal("DB_URI is not set")
	}
	if cfg.TokenSecret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET is not set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
