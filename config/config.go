package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the application reads from the environment.
// It is loaded once in main and handed to the components that need it.
type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string

	// SMTP (OTP delivery)
	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string

	// Redis (refresh-token blacklist)
	RedisAddr string

	// Cloudinary (service images)
	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadPreset string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the configuration from the environment, with .env support.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))

	return &Config{
		AppPort:     getEnv("APP_PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getEnv("JWT_SECRET", "solid_secret_key"),

		SMTPHost:  getEnv("SMTP_HOST", ""),
		SMTPPort:  smtpPort,
		EmailUser: getEnv("EMAIL_USER", ""),
		EmailPass: getEnv("EMAIL_PASS", ""),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		CloudinaryCloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:       getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret:    getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryUploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", ""),
	}
}
