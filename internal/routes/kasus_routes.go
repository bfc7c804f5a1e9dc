package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/handler"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/middleware"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/repository"
)

func SetupKasusRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewKasusRepository(db)
	pegawaiRepo := repository.NewPegawaiRepository(db)
	hdl := handler.NewKasusHandler(repo, pegawaiRepo)

	// Seluruh portal kasus hanya untuk pegawai yang login.
	api := app.Group("/api/kasus", middleware.Auth)

	api.Post("/", hdl.Create)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id/tugaskan", middleware.Role("Admin"), hdl.Assign)
	api.Put("/:id/status", hdl.UpdateStatus)
	api.Put("/:id/eskalasi", hdl.Eskalasi)
}
