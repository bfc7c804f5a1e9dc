package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/presensi"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/repository"
)

type DashboardHandler struct {
	tamuRepo     repository.TamuRepository
	suratRepo    repository.SuratRepository
	kasusRepo    repository.KasusRepository
	presensiRepo repository.PresensiRepository
	presensiSvc  *presensi.Service
}

func NewDashboardHandler(
	tamuRepo repository.TamuRepository,
	suratRepo repository.SuratRepository,
	kasusRepo repository.KasusRepository,
	presensiRepo repository.PresensiRepository,
	presensiSvc *presensi.Service,
) *DashboardHandler {
	return &DashboardHandler{
		tamuRepo:     tamuRepo,
		suratRepo:    suratRepo,
		kasusRepo:    kasusRepo,
		presensiRepo: presensiRepo,
		presensiSvc:  presensiSvc,
	}
}

// GetRingkasan mengumpulkan angka-angka untuk dashboard admin: kunjungan dan
// presensi hari ini, antrian surat per status, dan kasus per status.
func (h *DashboardHandler) GetRingkasan(c *fiber.Ctx) error {
	tanggal := time.Now().Format("2006-01-02")

	tamuHariIni, _ := h.tamuRepo.CountByTanggal(tanggal)
	presensiHariIni, _ := h.presensiRepo.CountByTanggalSumber(tanggal, presensi.SumberBukuTamu)

	suratPerStatus := fiber.Map{}
	for _, status := range []string{
		model.SuratDiterima, model.SuratDiverifikasi, model.SuratDiproses,
		model.SuratSelesai, model.SuratDitolak,
	} {
		jumlah, _ := h.suratRepo.CountByStatus(status)
		suratPerStatus[status] = jumlah
	}

	kasusPerStatus := fiber.Map{}
	for _, status := range []string{
		model.KasusBaru, model.KasusDitugaskan, model.KasusDiproses,
		model.KasusSelesai, model.KasusEskalasi,
	} {
		jumlah, _ := h.kasusRepo.CountByStatus(status)
		kasusPerStatus[status] = jumlah
	}

	existing, err := h.presensiRepo.GetByTanggalSumber(tanggal, presensi.SumberBukuTamu)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data presensi"})
	}

	return c.JSON(fiber.Map{
		"tanggal": tanggal,
		"data": fiber.Map{
			"tamu_hari_ini":     tamuHariIni,
			"presensi_hari_ini": presensiHariIni,
			"surat":             suratPerStatus,
			"kasus":             kasusPerStatus,
			"kuota_rapat":       h.presensiSvc.RekapKuota(existing),
		},
	})
}
