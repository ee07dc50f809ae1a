package main

import (
	"context"
	"log"

	"dms/internal/app"
	"dms/internal/config"
	"dms/internal/database"
	"dms/internal/domain/user"

	"github.com/joho/godotenv"
)

// Migrates the schema and seeds the admin account. Safe to run repeatedly:
// the admin row is only created when absent.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := app.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	userService := user.NewService(user.NewRepository(db))
	if err := userService.EnsureAdmin(context.Background()); err != nil {
		log.Fatal("admin seed failed:", err)
	}

	log.Println("Seed completed. Admin account: admin / admin123")
}
