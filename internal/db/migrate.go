package db

import (
	"ledger_api/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Migrate performs the forward schema migration for the ledger.
// AutoMigrate will create the transactions table, missing columns and
// indexes; it never drops or rewrites existing data.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(&domain.Transaction{})
}
