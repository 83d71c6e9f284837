package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBPath     string
	SessionKey string
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local development.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	return Config{
		Port:       getEnv("PORT", "5000"),
		DBPath:     getEnv("DB_PATH", "data.db"),
		SessionKey: getEnv("SESSION_KEY", "dev"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
