package db

import (
	"fmt"
	"ledger_api/internal/config" // Importing configuration

	"gorm.io/driver/mysql"  // MySQL driver for GORM
	"gorm.io/driver/sqlite" // SQLite driver for GORM (development and tests)
	"gorm.io/gorm"          // GORM ORM library
)

// Open connects to the configured store engine. MySQL serves networked
// deployments; SQLite serves development and tests with a file-backed or
// in-memory store.
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DatabaseURL), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{})
	default:
		// Unreachable after config validation, kept for direct callers
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
