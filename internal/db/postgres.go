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

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to Postgres")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// WINES
	// -------------------------------
	winesSQL := `
		CREATE TABLE IF NOT EXISTS wines (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			type VARCHAR(100) NOT NULL,
			vintage INT,
			region VARCHAR(255),
			price NUMERIC(10,2),
			description TEXT,
			is_86d BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := pool.Exec(ctx, winesSQL); err != nil {
		return err
	}

	// -------------------------------
	// COCKTAILS
	// -------------------------------
	cocktailsSQL := `
		CREATE TABLE IF NOT EXISTS cocktails (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			ingredients TEXT NOT NULL,
			recipe TEXT,
			price NUMERIC(10,2),
			type VARCHAR(100),
			is_signature BOOLEAN NOT NULL DEFAULT FALSE,
			is_86d BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := pool.Exec(ctx, cocktailsSQL); err != nil {
		return err
	}

	// -------------------------------
	// SPECIALS
	// -------------------------------
	specialsSQL := `
		CREATE TABLE IF NOT EXISTS specials (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			description TEXT,
			price NUMERIC(10,2),
			type VARCHAR(100),
			start_date DATE,
			end_date DATE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := pool.Exec(ctx, specialsSQL); err != nil {
		return err
	}

	// -------------------------------
	// 86'D ITEMS LOG (append-only)
	// -------------------------------
	eightySixedSQL := `
		CREATE TABLE IF NOT EXISTS eighty_sixed_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			item_name VARCHAR(255) NOT NULL,
			item_type VARCHAR(50) NOT NULL,
			item_id UUID,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT now(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := pool.Exec(ctx, eightySixedSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENUS (OCR uploads)
	// -------------------------------
	menusSQL := `
		CREATE TABLE IF NOT EXISTS menus (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(255) NOT NULL,
			image_url VARCHAR(500) NOT NULL,
			ocr_raw_text TEXT,
			ocr_processed_text TEXT,
			is_featured BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := pool.Exec(ctx, menusSQL); err != nil {
		return err
	}

	// -------------------------------
	// USERS (staff accounts)
	// -------------------------------
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'staff',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := pool.Exec(ctx, usersSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
