package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration, read once at startup.
type Config struct {
	Port            string
	ChromePath      string
	GeminiAPIKey    string
	GeminiModel     string
	OutputDir       string
	DefaultTemplate string
}

// Load reads configuration from the environment, applying an optional .env
// file first. A missing .env is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getenv("PORT", "3000"),
		ChromePath:      os.Getenv("CHROME_PATH"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     os.Getenv("GEMINI_MODEL"),
		OutputDir:       getenv("OUTPUT_DIR", "exports"),
		DefaultTemplate: getenv("DEFAULT_TEMPLATE", "modern"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
