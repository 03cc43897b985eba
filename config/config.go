package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	RedisURI           string
	JWTSecret          string
	SessionExpiryHours int
	EmailExpiryHours   int
	SMTPHost           string
	SMTPPort           int
	SMTPAccount        string
	SMTPPassword       string
	AllowedOrigins     string
	AppBaseURL         string
	FrontendBaseURL    string
}

func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "4000"),
		DBURL:              mustGetEnv("DB_URL"),
		RedisURI:           mustGetEnv("REDIS_URI"),
		JWTSecret:          mustGetEnv("JWT_SECRET"),
		SessionExpiryHours: getEnvAsInt("SESSION_TOKEN_EXPIRY_HOURS", 6),
		EmailExpiryHours:   getEnvAsInt("EMAIL_TOKEN_EXPIRY_HOURS", 4),
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getEnvAsInt("SMTP_PORT", 587),
		SMTPAccount:        getEnv("SMTP_ACCOUNT", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		AllowedOrigins:     getEnv("ALLOWED_ORIGINS", "http://localhost:5173"),
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:4000"),
		FrontendBaseURL:    getEnv("FRONTEND_BASE_URL", "http://localhost:5173"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
