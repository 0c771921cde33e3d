package main

import (
	"flag"
	"log"

	"github.com/vpriyankaa/sales-admin-sub000/internal/config"
	"github.com/vpriyankaa/sales-admin-sub000/internal/repository"
	"github.com/vpriyankaa/sales-admin-sub000/pkg/database"

	"github.com/joho/godotenv"
)

// reset-password sets a user's password directly in the database, for when
// the admin account is locked out.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg := config.Load()

	email := flag.String("email", cfg.AdminEmail, "email of the user to reset")
	password := flag.String("password", cfg.AdminPassword, "new password")
	flag.Parse()

	if len(*password) < 6 {
		log.Fatal("Password must be at least 6 characters")
	}

	db := database.ConnectDB(cfg.DatabaseURL)
	userRepo := repository.NewUserRepo(db)

	user, err := userRepo.FindByLogin(*email)
	if err != nil {
		log.Fatalf("User %s not found in database: %v", *email, err)
	}

	if err := user.SetPassword(*password); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	if err := userRepo.UpdatePassword(user.ID, user.Password); err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Password for %s has been reset", *email)
}
