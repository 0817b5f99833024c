package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/guhdnews/lacqr-sub000/internal/auth"
	"github.com/guhdnews/lacqr-sub000/internal/db"
	"github.com/guhdnews/lacqr-sub000/internal/lens"
	"github.com/guhdnews/lacqr-sub000/internal/menu"
	"github.com/guhdnews/lacqr-sub000/internal/router"
	"github.com/guhdnews/lacqr-sub000/internal/storage"
	"github.com/guhdnews/lacqr-sub000/internal/tech"
	"github.com/guhdnews/lacqr-sub000/internal/vision"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"DETECTOR_ENDPOINT",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── VISION PROVIDERS ─────────────────────────
	describer := vision.NewGeminiDescriber()
	detector := vision.NewDetectorClient()

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(auth.NewPostgresUserRepository(pgDB))
	techService := tech.NewService(tech.NewPostgresRepository(pgDB))
	menuService := menu.NewService(menu.NewPostgresRepository(pgDB))

	lensService := lens.NewService(
		lens.NewPostgresRepository(pgDB),
		menuService,
		describer,
		detector,
		r2Client,
	)

	// ───────────────────────── ROUTES ─────────────────────────
	r := router.New(router.Handlers{
		Auth: auth.NewHandler(authService),
		Menu: menu.NewHandler(menuService),
		Tech: tech.NewHandler(techService),
		Lens: lens.NewHandler(lensService),
	})

	// ───────────────────────── ANALYSIS WORKER ─────────────────────────
	go lensService.RunWorker(context.Background(), 2*time.Second)

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
