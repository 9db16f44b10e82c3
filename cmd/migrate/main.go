package main

import (
	"ledger_api/internal/config" // Custom import path (Config)
	"ledger_api/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg, err := config.LoadConfig() // Load and validate configuration
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	conn, err := db.Open(cfg) // Open a connection to the configured store
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}
