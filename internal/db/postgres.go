package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'TECH',
			onboarding_status VARCHAR(50),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// TECH PROFILES
	// -------------------------------
	techsSQL := `
		CREATE TABLE IF NOT EXISTS techs (
			id UUID PRIMARY KEY,
			user_id UUID UNIQUE NOT NULL,
			business_name VARCHAR(255) NOT NULL,
			city VARCHAR(255) NOT NULL,
			instagram VARCHAR(255),
			bio TEXT,
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`
	if _, err := db.Exec(ctx, techsSQL); err != nil {
		return err
	}

	// -------------------------------
	// PRICE MENUS (one per tech, full document)
	// -------------------------------
	priceMenusSQL := `
		CREATE TABLE IF NOT EXISTS price_menus (
			tech_id UUID PRIMARY KEY,
			menu_json JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (tech_id) REFERENCES users(id)
		)
	`
	if _, err := db.Exec(ctx, priceMenusSQL); err != nil {
		return err
	}

	// -------------------------------
	// QUOTES
	// -------------------------------
	quotesSQL := `
		CREATE TABLE IF NOT EXISTS quotes (
			id UUID PRIMARY KEY,
			tech_id UUID NOT NULL,
			image_url VARCHAR(500) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'QUOTE_UPLOADED',
			note TEXT,
			degraded BOOLEAN NOT NULL DEFAULT FALSE,
			error TEXT,
			selection_json JSONB,
			price_json JSONB,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (tech_id) REFERENCES users(id)
		)
	`
	if _, err := db.Exec(ctx, quotesSQL); err != nil {
		return err
	}

	quotesIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_quotes_status_created
		ON quotes (status, created_at)
	`
	if _, err := db.Exec(ctx, quotesIndexSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
