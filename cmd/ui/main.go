package main

import (
	"log"

	"github.com/joho/godotenv"

	"censusboard/app"
	"censusboard/internal/config"
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

	service := app.NewDashboardService(cfg, nil)
	htmlApp, err := ui.NewApp(cfg, service)
	if err != nil {
		log.Fatal("Failed to create dashboard app:", err)
	}

	log.Printf("Starting census dashboard UI on http://localhost:%s", cfg.Server.Port)
	log.Fatal(htmlApp.Start())
}
