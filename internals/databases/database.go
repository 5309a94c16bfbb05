package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the application handle. It connects as the RLS-enforced app role and
// is what every request starts from; the privileged handle lives in gateway.go.
var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL (Supabase)...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  buildDSN(os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD")),
		PreferSimpleProtocol: true, // 👍 plays nice with PgBouncer transaction pooling
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

// buildDSN assembles the Supabase DSN for a given role. statement_timeout keeps
// a hung query from holding a request past the HTTP timeout guard.
func buildDSN(user, password string) string {
	sslmode := getenv("DB_SSLMODE", "require")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=hoaportal&options=-c statement_timeout=3000",
		user,
		password,
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	// ⚖️ keep under the Supabase/PgBouncer connection limits
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond) // let the server come up first
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
