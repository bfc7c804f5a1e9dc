package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/handler"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/middleware"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/repository"
)

func SetupPegawaiRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewPegawaiRepository(db)
	hdl := handler.NewPegawaiHandler(repo)

	api := app.Group("/api/pegawai")

	api.Post("/login", hdl.Login)

	api.Get("/profil", middleware.Auth, hdl.GetProfile)
	api.Put("/ganti-password", middleware.Auth, hdl.ChangePassword)
	api.Get("/", middleware.Auth, middleware.Role("Admin"), hdl.GetAll)
	api.Post("/", middleware.Auth, middleware.Role("Admin"), hdl.Create)
}
