package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	FallbackDBPath string
	JWTSecret      string
	ScanAPIKey     string
	ServerPort     string
	MailAPIURL     string
	MailAPIKey     string
	MailSender     string
}

func Load() *Config {
	// .env is optional; real deployments inject variables directly.
	_ = godotenv.Load()

	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "forumsec"),
		FallbackDBPath: getEnv("FALLBACK_DB_PATH", "forumsec-fallback.db"),
		JWTSecret:      getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ScanAPIKey:     getEnv("SCAN_API_KEY", "scan-api-key-change-me"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		MailAPIURL:     getEnv("MAIL_API_URL", "https://api.brevo.com/v3/smtp/email"),
		MailAPIKey:     getEnv("MAIL_API_KEY", ""),
		MailSender:     getEnv("MAIL_SENDER", "no-reply@forum-sec.example"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
