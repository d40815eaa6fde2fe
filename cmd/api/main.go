package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"censusboard/adapters/postgres"
	"censusboard/app"
	"censusboard/internal/config"
	"censusboard/ports"
	"censusboard/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var repo ports.ExtractRepository
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to extract registry: %v", err)
		}
		defer db.Close()
		if err := postgres.Migrate(context.Background(), db); err != nil {
			log.Fatalf("Failed to migrate extract registry: %v", err)
		}
		repo = postgres.NewExtractRepository(db)
	}

	service := app.NewDashboardService(cfg, repo)
	server := ui.NewServer(cfg, service)

	log.Printf("Starting census dashboard API on http://localhost:%s", cfg.Server.APIPort)
	log.Fatal(server.Start())
}
