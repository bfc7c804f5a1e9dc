package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/handler"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/middleware"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/presensi"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/repository"
)

func SetupPresensiRoutes(app *fiber.App, db *gorm.DB, roster *presensi.Roster) {
	repo := repository.NewPresensiRepository(db)
	svc := presensi.NewService(roster)

	// Snapshot dibaca ulang dari database setiap percobaan check-in,
	// lalu keputusan + penyimpanan diserialisasi oleh Admitter.
	admitter := presensi.NewAdmitter(svc,
		func() ([]model.Presensi, error) {
			return repo.GetByTanggalSumber(svc.Now().Format("2006-01-02"), presensi.SumberBukuTamu)
		},
		repo.Create,
	)
	hdl := handler.NewPresensiHandler(admitter, svc, repo)

	api := app.Group("/api/presensi")

	// Kios publik, dibatasi lajunya agar tidak dibanjiri submit ganda.
	kios := api.Group("", limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
	}))
	kios.Post("/checkin", hdl.CheckIn)
	kios.Post("/validasi", hdl.Validasi)
	kios.Get("/kuota", hdl.GetKuota)

	// Khusus petugas yang login.
	api.Get("/hari-ini", middleware.Auth, hdl.GetHariIni)
	api.Delete("/hari-ini", middleware.Auth, middleware.Role("Admin"), hdl.ClearHariIni)
}
