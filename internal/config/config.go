package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI          string
	DBName            string
	JWTSecret         string
	AdminPassword     string
	AdminPasswordHash string
	SessionTTL        time.Duration
	S3Endpoint        string
	S3Region          string
	S3Bucket          string
	S3AccessKey       string
	S3SecretKey       string
	S3PublicBaseURL   string
	AllowedOrigin     string
	CookieSecure      bool
	Port              string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:          getEnvOrDefault("MONGO_URI", ""),
		DBName:            getEnvOrDefault("DB_NAME", "dealership"),
		JWTSecret:         getEnvOrDefault("JWT_SECRET", ""),
		AdminPassword:     getEnvOrDefault("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnvOrDefault("ADMIN_PASSWORD_HASH", ""),
		SessionTTL:        getDurationEnv("SESSION_TTL_DAYS", 30, 24*time.Hour),
		S3Endpoint:        getEnvOrDefault("S3_ENDPOINT", ""),
		S3Region:          getEnvOrDefault("S3_REGION", "us-east-1"),
		S3Bucket:          getEnvOrDefault("S3_BUCKET", "dealership-images"),
		S3AccessKey:       getEnvOrDefault("S3_ACCESS_KEY", ""),
		S3SecretKey:       getEnvOrDefault("S3_SECRET_KEY", ""),
		S3PublicBaseURL:   getEnvOrDefault("S3_PUBLIC_BASE_URL", ""),
		AllowedOrigin:     getEnvOrDefault("ALLOWED_ORIGIN", "http://localhost:3000"),
		CookieSecure:      getBoolEnv("COOKIE_SECURE", false),
		Port:              getEnvOrDefault("PORT", "8080"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
