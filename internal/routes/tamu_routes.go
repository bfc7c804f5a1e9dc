package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/handler"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/middleware"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/repository"
)

func SetupTamuRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewTamuRepository(db)
	hdl := handler.NewTamuHandler(repo)

	api := app.Group("/api/tamu")

	// Registrasi dari kios tidak butuh login.
	api.Post("/", hdl.Create)

	api.Get("/", middleware.Auth, hdl.GetAll)
	api.Get("/hari-ini", middleware.Auth, hdl.GetHariIni)
	api.Get("/:id", middleware.Auth, hdl.GetByID)
}
