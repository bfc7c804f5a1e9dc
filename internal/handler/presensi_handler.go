package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/presensi"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/repository"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/validator"
)

type PresensiHandler struct {
	admitter *presensi.Admitter
	svc      *presensi.Service
	repo     repository.PresensiRepository
}

func NewPresensiHandler(admitter *presensi.Admitter, svc *presensi.Service, repo repository.PresensiRepository) *PresensiHandler {
	return &PresensiHandler{admitter: admitter, svc: svc, repo: repo}
}

// CheckIn menerima isian formulir kios dan memprosesnya lewat Admitter.
// Pesan penolakan diteruskan apa adanya ke pengguna.
func (h *PresensiHandler) CheckIn(c *fiber.Ctx) error {
	var in presensi.Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data tidak valid"})
	}

	entri, err := h.admitter.Admit(in)
	if err != nil {
		switch {
		case errors.Is(err, presensi.ErrIsianTidakValid),
			errors.Is(err, presensi.ErrPesertaTidakTerdaftar),
			errors.Is(err, presensi.ErrPeranWajibDipilih):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, presensi.ErrKuotaTotalPenuh),
			errors.Is(err, presensi.ErrKuotaPesertaPenuh),
			errors.Is(err, presensi.ErrNIPSudahPresensi),
			errors.Is(err, presensi.ErrNamaSudahPresensi),
			errors.Is(err, presensi.ErrPeranSudahTerisi):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan presensi"})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Presensi berhasil dicatat",
		"data":    entri,
	})
}

type ValidasiRequest struct {
	Field string `json:"field"` // nama / no_hp / nip
	Nilai string `json:"nilai"`
}

// Validasi memberi umpan balik per field untuk formulir live, tanpa
// menyentuh kuota.
func (h *PresensiHandler) Validasi(c *fiber.Ctx) error {
	var req ValidasiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data tidak valid"})
	}

	var hasil validator.Result
	switch req.Field {
	case "nama":
		hasil = validator.ValidateNama(req.Nilai)
	case "no_hp":
		hasil = validator.ValidateNoHP(req.Nilai)
	case "nip":
		hasil = validator.ValidateNIP(req.Nilai)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field tidak dikenal"})
	}

	return c.JSON(fiber.Map{"data": hasil})
}

func (h *PresensiHandler) GetHariIni(c *fiber.Ctx) error {
	tanggal := time.Now().Format("2006-01-02")
	list, err := h.repo.GetByTanggalSumber(tanggal, presensi.SumberBukuTamu)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data presensi"})
	}
	return c.JSON(fiber.Map{"data": list, "tanggal": tanggal})
}

// GetKuota mengembalikan sisa kursi per slot undangan untuk tampilan kios
// dan dashboard.
func (h *PresensiHandler) GetKuota(c *fiber.Ctx) error {
	tanggal := time.Now().Format("2006-01-02")
	existing, err := h.repo.GetByTanggalSumber(tanggal, presensi.SumberBukuTamu)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data presensi"})
	}
	return c.JSON(fiber.Map{
		"data":        h.svc.RekapKuota(existing),
		"kuota_total": h.svc.Roster.KuotaTotal(),
		"tanggal":     tanggal,
	})
}

// ClearHariIni mengosongkan presensi hari ini. Hanya untuk admin, dipakai
// setelah rapat selesai atau saat gladi.
func (h *PresensiHandler) ClearHariIni(c *fiber.Ctx) error {
	tanggal := time.Now().Format("2006-01-02")
	jumlah, err := h.repo.DeleteByTanggalSumber(tanggal, presensi.SumberBukuTamu)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus presensi"})
	}
	return c.JSON(fiber.Map{
		"message": "Presensi hari ini berhasil dikosongkan",
		"jumlah":  jumlah,
	})
}
