package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port       string
	Env        string
	BaseURL    string
	UploadsDir string
	DBDriver   string // sqlite or postgres
	DBDSN      string
	LogLevel   string
}

// Load reads .env if present and falls back to defaults suitable for
// local development (sqlite file database, uploads under ./uploads).
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:       getEnv("PORT", "3000"),
		Env:        getEnv("ENV", "development"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:3000"),
		UploadsDir: getEnv("UPLOADS_DIR", "./uploads"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBDSN:      getEnv("DB_DSN", "database.db"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
