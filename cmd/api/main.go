package main

import (
	"log"

	"dms/internal/app"
	"dms/internal/config"
	"dms/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	r, err := app.New(cfg, db)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Listening on", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
