package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/handler"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/mailer"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/middleware"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/repository"
)

func SetupSuratRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewSuratRepository(db)
	hdl := handler.NewSuratHandler(repo, mailer.NewFromEnv())

	api := app.Group("/api/surat")

	// Pengajuan dan cek status terbuka untuk publik.
	api.Post("/", hdl.Create)
	api.Get("/track/:nomor", hdl.Track)

	api.Get("/", middleware.Auth, hdl.GetAll)
	api.Put("/:id/status", middleware.Auth, hdl.UpdateStatus)
}
