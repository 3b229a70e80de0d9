package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds every knob the service needs at startup. It is built once in
// main and handed to the pieces that need it; nothing reads the environment
// after Load returns.
type Config struct {
	Port    string
	GinMode string

	// DBDriver selects the ledger storage: "mysql" for production,
	// "sqlite" for local development.
	DBDriver string
	DBDSN    string

	// Timezone is the venue-local timezone used for order numbering.
	Timezone string
	Location *time.Location

	// LockTimeout bounds how long an order submission waits for the
	// transaction lock before giving up.
	LockTimeout time.Duration

	JWTSecret         string
	StaffPasscodeHash string

	LicenseKey     string
	LicenseExpires string

	CORSOrigin string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		DBDriver:          getEnv("DB_DRIVER", "sqlite"),
		DBDSN:             getEnv("DB_DSN", "foodtruck.db"),
		Timezone:          getEnv("APP_TIMEZONE", "Asia/Taipei"),
		JWTSecret:         getEnv("JWT_SECRET", "TestSecretKeyAUTH1945"),
		StaffPasscodeHash: os.Getenv("STAFF_PASSCODE_HASH"),
		LicenseKey:        os.Getenv("LICENSE_KEY"),
		LicenseExpires:    os.Getenv("LICENSE_EXPIRES"),
		CORSOrigin:        getEnv("CORS_ORIGIN", "*"),
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	seconds, err := strconv.Atoi(getEnv("LOCK_TIMEOUT_SECONDS", "10"))
	if err != nil || seconds <= 0 {
		return nil, fmt.Errorf("invalid LOCK_TIMEOUT_SECONDS")
	}
	cfg.LockTimeout = time.Duration(seconds) * time.Second

	return cfg, nil
}

// OpenDB opens the configured database connection for the ledger adapter.
func (c *Config) OpenDB() (*gorm.DB, error) {
	switch c.DBDriver {
	case "mysql":
		return gorm.Open(mysql.Open(c.DBDSN), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(c.DBDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
