package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	PostgresConnStr string
	JWTSecret       string
}

func Load() *Config {
	// Load environment variables from .env file if present
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:       getEnv("JWT_SECRET", "supersecretjwtkey"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
