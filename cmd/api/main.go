package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/4rul23/Kominfo-PKL-sub000/config"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()

	// Roster undangan rapat dimuat sekali saat start, read-only setelahnya.
	roster := config.LoadRoster()
	log.Printf("Roster dimuat: %d slot undangan, %d kursi total", len(roster.Semua()), roster.KuotaTotal())

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari kios/portal di origin lain
	app.Use(logger.New()) // Log request di terminal

	routes.SetupPegawaiRoutes(app, config.DB)
	routes.SetupBidangRoutes(app, config.DB)
	routes.SetupTamuRoutes(app, config.DB)
	routes.SetupSuratRoutes(app, config.DB)
	routes.SetupKasusRoutes(app, config.DB)
	routes.SetupPresensiRoutes(app, config.DB, roster)
	routes.SetupDashboardRoutes(app, config.DB, roster)

	port := config.GetEnv("PORT", "3000")
	log.Printf("Server siap! Menunggu request di port :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
