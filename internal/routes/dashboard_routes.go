package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/handler"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/middleware"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/presensi"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/repository"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, roster *presensi.Roster) {
	hdl := handler.NewDashboardHandler(
		repository.NewTamuRepository(db),
		repository.NewSuratRepository(db),
		repository.NewKasusRepository(db),
		repository.NewPresensiRepository(db),
		presensi.NewService(roster),
	)

	api := app.Group("/api/dashboard", middleware.Auth)
	api.Get("/ringkasan", hdl.GetRingkasan)
}
