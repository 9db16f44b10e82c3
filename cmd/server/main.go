package main

import (
	"ledger_api/internal/api"        // Custom package for API handlers
	"ledger_api/internal/config"     // Custom package for configuration
	"ledger_api/internal/db"         // Custom package for database access
	"ledger_api/internal/middleware" // Custom package for middleware
	"ledger_api/internal/store"      // Custom package for persistence

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig() // Load and validate configuration
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err) // Abort loudly on invalid environment
	}

	// Connect to the configured store engine
	conn, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Run the forward schema migration on boot
	if err := db.Migrate(conn); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	ledger := store.NewLedger(conn) // Persistence over the transactions table

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Transaction routes
	transactions := r.Group("/transactions")
	transactions.POST("", api.CreateTransactionHandler(ledger)) // Write endpoint, mints/reuses session

	// Read routes (gated: a session cookie must already be present)
	reads := transactions.Group("")
	reads.Use(middleware.SessionRequired())
	reads.GET("", api.ListTransactionsHandler(ledger))          // List endpoint
	reads.GET("/summary", api.GetSummaryHandler(ledger))        // Summary endpoint
	reads.GET("/:id", api.GetTransactionHandler(ledger))        // Fetch-by-id endpoint

	logrus.Info("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
