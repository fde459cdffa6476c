package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"taskvault/internal/domain"
	"taskvault/internal/repository"
	"taskvault/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Registers a user directly against the database, bypassing the HTTP
// surface. Handy for bootstrapping and local testing.
func main() {
	email := flag.String("email", "", "user email")
	password := flag.String("password", "", "user password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	hash, err := service.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	user := &domain.User{
		Email:          strings.TrimSpace(strings.ToLower(*email)),
		HashedPassword: hash,
	}

	if err := repository.NewUserRepository(db).Create(context.Background(), user); err != nil {
		log.Fatalf("create user: %v", err)
	}

	fmt.Printf("created user %s (%s)\n", user.Email, user.ID)
}
