package database

import (
	"errors"
	"log"
	"os"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Handle is a resolved database credential. Privileged handles connect as the
// service role and bypass row-level security; app handles go through the
// RLS-enforced app role. Postgres itself is the enforcement mechanism — the
// flag only records which side of it the caller got.
type Handle struct {
	DB         *gorm.DB
	Privileged bool
}

var (
	serviceMu sync.Mutex
	serviceDB *gorm.DB
)

// AppHandle wraps the shared app connection. Always safe to hand out.
func AppHandle() *Handle {
	return &Handle{DB: DB, Privileged: false}
}

// ServiceHandle lazily opens the service-role connection (the Supabase service
// key analogue). Only success is cached: a failed construction is retried on
// the next call, so a transient outage downgrades admins for that request,
// not for the life of the process. Callers must treat an error as "stay
// unprivileged"; admin resolution never escalates on failure.
func ServiceHandle() (*Handle, error) {
	serviceMu.Lock()
	defer serviceMu.Unlock()

	if serviceDB == nil {
		user := os.Getenv("DB_SERVICE_USER")
		password := os.Getenv("DB_SERVICE_PASSWORD")
		if user == "" || password == "" {
			return nil, errors.New("DB_SERVICE_USER / DB_SERVICE_PASSWORD not set")
		}
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  buildDSN(user, password),
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			// the service pool stays small: only confirmed admins reach it
			sqlDB.SetMaxOpenConns(5)
			sqlDB.SetMaxIdleConns(2)
		}
		serviceDB = db
		log.Println("✅ Service-role DB connected.")
	}
	return &Handle{DB: serviceDB, Privileged: true}, nil
}
