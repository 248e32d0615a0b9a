// Manually load the sample content set.
//
// The server already seeds on startup when game.seed_content is enabled; this
// script is for seeding a database without starting the server, for example
// before running a demo against a fresh instance.
//
// Usage: go run scripts/seed_content.go

package main

import (
	"cyberwalk_backend/internal/config"
	"cyberwalk_backend/pkg/database"
	"cyberwalk_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.SeedGameContent(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done!")
}
