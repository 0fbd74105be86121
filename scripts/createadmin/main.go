// Command createadmin bootstraps the initial admin account so the dashboard
// can be logged into on a fresh deployment. Safe to re-run: it exits cleanly
// when the email is already registered.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := flag.String("email", "admin@example.com", "admin email")
	password := flag.String("password", "", "admin password (required)")
	name := flag.String("name", "Admin User", "admin display name")
	flag.Parse()

	if *password == "" {
		log.Fatal("usage: createadmin -email <email> -password <password> [-name <name>]")
	}

	_ = godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer conn.Close(ctx)

	var existing int64
	err = conn.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, *email).Scan(&existing)
	if err == nil {
		fmt.Printf("Admin user %s already exists (id %d)\n", *email, existing)
		return
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		log.Fatalf("check existing: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	var id int64
	err = conn.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, name, role, created_at) VALUES ($1, $2, $3, 'admin', now()) RETURNING id`,
		*email, string(hash), *name,
	).Scan(&id)
	if err != nil {
		log.Fatalf("insert: %v", err)
	}

	fmt.Printf("Admin user created successfully (id %d)\n", id)
	fmt.Printf("Email: %s\n", *email)
}
