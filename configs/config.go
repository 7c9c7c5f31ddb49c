package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	JWTSecret  string
	SessionTTL time.Duration
	BooksFile  string
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	sessionTTL := time.Hour
	if val := os.Getenv("SESSION_TTL"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			log.Fatalf("Invalid SESSION_TTL: %v", err)
		}
		sessionTTL = d
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		Port:       port,
		JWTSecret:  os.Getenv("JWT_SECRET"),
		SessionTTL: sessionTTL,
		BooksFile:  os.Getenv("BOOKS_FILE"),
	}
}
