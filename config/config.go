package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	PORT      string
	DB_DRIVER string
	DB_URL    string

	ADMIN_TOKEN      string
	MEDIA_PUBLIC_URL string

	STORAGE_DRIVER string
	S3_ENDPOINT    string
	S3_BUCKET      string
	S3_ACCESS_KEY  string
	S3_SECRET_KEY  string
	S3_REGION      string
	S3_USE_SSL     bool

	MAX_UPLOAD_BYTES int64
	// CORS_ORIGINS restricts Allow-Origin to the listed origins; empty means "*".
	// Non-preflight requests from other origins get 403.
	CORS_ORIGINS   []string
	SANITIZE_INPUT bool

	LOG_LEVEL  string
	LOG_FORMAT string
)

const defaultMaxUploadBytes = 50 << 20

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_DRIVER = getEnv("DB_DRIVER", "postgres")
	DB_URL = mustEnv("DB_URL")

	ADMIN_TOKEN = mustEnv("ADMIN_TOKEN")
	MEDIA_PUBLIC_URL = mustEnv("MEDIA_PUBLIC_URL")

	STORAGE_DRIVER = getEnv("STORAGE_DRIVER", "s3")
	if STORAGE_DRIVER == "s3" {
		S3_ENDPOINT = mustEnv("S3_ENDPOINT")
		S3_BUCKET = mustEnv("S3_BUCKET")
	}
	S3_ACCESS_KEY = getEnv("S3_ACCESS_KEY", "")
	S3_SECRET_KEY = getEnv("S3_SECRET_KEY", "")
	S3_REGION = getEnv("S3_REGION", "auto")
	S3_USE_SSL = getBool("S3_USE_SSL", true)

	MAX_UPLOAD_BYTES = getInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)
	CORS_ORIGINS = splitList(getEnv("CORS_ORIGINS", ""))
	SANITIZE_INPUT = getBool("SANITIZE_INPUT", false)

	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	LOG_FORMAT = getEnv("LOG_FORMAT", "json")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("Invalid boolean for %s=%q, using %v", key, raw, fallback)
		return fallback
	}
	return v
}

func getInt64(key string, fallback int64) int64 {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v <= 0 {
		log.Printf("Invalid size for %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return v
}

// splitList turns "a, b,,c" into [a b c].
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
