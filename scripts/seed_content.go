package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// Seeds the singletons so a fresh database serves a non-empty portfolio.
func main() {
	fmt.Println("seeding portfolio content...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	email := os.Getenv("CONTACT_EMAIL")
	if email == "" {
		email = "hello@example.com"
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	_, err = pool.Exec(ctx, `
		INSERT INTO about_me (id, title, description)
		SELECT $1, 'Software Engineer', 'This is a placeholder bio. Edit it through PUT /api/about.'
		WHERE NOT EXISTS (SELECT 1 FROM about_me)
	`, uuid.New())
	if err != nil {
		log.Fatalf("cannot seed about_me: %v", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO contact_info (id, email)
		SELECT $1, $2
		WHERE NOT EXISTS (SELECT 1 FROM contact_info)
	`, uuid.New(), email)
	if err != nil {
		log.Fatalf("cannot seed contact_info: %v", err)
	}

	fmt.Println("seeded about_me and contact_info successfully!")
}
