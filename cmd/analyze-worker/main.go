package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/guhdnews/lacqr-sub000/internal/db"
	"github.com/guhdnews/lacqr-sub000/internal/lens"
	"github.com/guhdnews/lacqr-sub000/internal/menu"
	"github.com/guhdnews/lacqr-sub000/internal/vision"
)

// Standalone analysis worker, for deployments that keep the pollers off
// the API pods. The API binary also runs one in-process.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	log.Println("🧠 Analysis worker starting...")

	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	menuService := menu.NewService(menu.NewPostgresRepository(pgDB))

	// This binary never handles uploads, so no storage client is wired.
	service := lens.NewService(
		lens.NewPostgresRepository(pgDB),
		menuService,
		vision.NewGeminiDescriber(),
		vision.NewDetectorClient(),
		nil,
	)

	log.Println("✅ Analysis worker initialized and running...")
	log.Println("Processing quotes every 2 seconds. Press Ctrl+C to stop.")

	service.RunWorker(context.Background(), 2*time.Second)
}
