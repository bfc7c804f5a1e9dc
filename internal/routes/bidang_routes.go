package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/handler"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/middleware"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/repository"
)

func SetupBidangRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewBidangRepository(db)
	hdl := handler.NewBidangHandler(repo)

	api := app.Group("/api/bidang")

	// Dropdown kios butuh daftar bidang tanpa login.
	api.Get("/", hdl.GetAll)

	api.Post("/", middleware.Auth, middleware.Role("Admin"), hdl.Create)
}
