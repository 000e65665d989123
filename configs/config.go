package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

// Config reads a setting from .env, falling back to the process environment.
// The .env file is parsed once per process. Keys in use: PORT, MONGODB_URI,
// ACCESS_TOKEN_SECRET, PAYMENT_SECRET_KEY, STRIPE_API_BASE_URL.
func Config(key string) string {
	loadEnv.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})

	return os.Getenv(key)
}