package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/4rul23/Kominfo-PKL-sub000/config"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()
	database.SeedAll(config.DB)
	log.Println("Seeding selesai!")
}
