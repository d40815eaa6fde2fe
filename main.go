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

// initDatabase connects the optional extract registry. A missing
// DATABASE_URL is not an error: the dashboard runs without history.
func initDatabase(cfg *config.Config) (*sqlx.DB, ports.ExtractRepository, error) {
	if cfg.Database.URL == "" {
		return nil, nil, nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	if err := postgres.Migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, postgres.NewExtractRepository(db), nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, repo, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize extract registry: %v", err)
	}
	if db != nil {
		defer db.Close()
	}

	service := app.NewDashboardService(cfg, repo)

	apiServer := ui.NewServer(cfg, service)
	go func() {
		if err := apiServer.Start(); err != nil {
			log.Fatalf("API server failed: %v", err)
		}
	}()

	htmlApp, err := ui.NewApp(cfg, service)
	if err != nil {
		log.Fatalf("Failed to create dashboard app: %v", err)
	}
	log.Printf("Starting census dashboard on http://localhost:%s", cfg.Server.Port)
	log.Fatal(htmlApp.Start())
}
