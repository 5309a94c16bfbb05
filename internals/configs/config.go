package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string
	RevalidateURL    string
	RevalidateToken  string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = os.Getenv("GOOGLE_CLIENT_ID")
	RevalidateURL = os.Getenv("REVALIDATE_URL")
	RevalidateToken = os.Getenv("REVALIDATE_TOKEN")
}

// GetEnv reads a required ENV and logs loudly when it is missing,
// so a broken deploy is visible at startup instead of at first query.
func GetEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[WARNING] ENV %s is empty", key)
	}
	return v
}

func GetEnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
