package handler

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/mailer"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/repository"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/validator"
)

// Transisi status surat yang diizinkan. Status di luar tabel ini ditolak.
var transisiSurat = map[string][]string{
	model.SuratDiterima:     {model.SuratDiverifikasi, model.SuratDitolak},
	model.SuratDiverifikasi: {model.SuratDiproses, model.SuratDitolak},
	model.SuratDiproses:     {model.SuratSelesai},
}

type SuratHandler struct {
	repo   repository.SuratRepository
	mailer *mailer.Mailer
}

func NewSuratHandler(repo repository.SuratRepository, m *mailer.Mailer) *SuratHandler {
	return &SuratHandler{repo: repo, mailer: m}
}

type AjukanSuratRequest struct {
	Perihal  string `json:"perihal"`
	Pengirim string `json:"pengirim"`
	Instansi string `json:"instansi"`
	NoHP     string `json:"no_hp"`
	Email    string `json:"email"`
	BidangID *uint  `json:"bidang_id"`
	Lampiran string `json:"lampiran"`
}

// Create menerima pengajuan surat elektronik dan memberi nomor tracking
// yang bisa dicek publik tanpa login.
func (h *SuratHandler) Create(c *fiber.Ctx) error {
	var req AjukanSuratRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data tidak valid"})
	}

	if strings.TrimSpace(req.Perihal) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Perihal surat wajib diisi"})
	}
	pengirim := validator.ValidateNama(req.Pengirim)
	if !pengirim.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": pengirim.Pesan})
	}
	noHP := validator.ValidateNoHP(req.NoHP)
	if !noHP.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": noHP.Pesan})
	}

	surat := model.Surat{
		NomorTracking: nomorTracking(),
		Perihal:       strings.TrimSpace(req.Perihal),
		Pengirim:      pengirim.Nilai,
		Instansi:      req.Instansi,
		NoHP:          noHP.Nilai,
		Email:         req.Email,
		BidangID:      req.BidangID,
		Status:        model.SuratDiterima,
	}
	if req.Lampiran != "" {
		surat.Lampiran = &req.Lampiran
	}

	if err := h.repo.Create(&surat); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan surat"})
	}

	return c.JSON(fiber.Map{
		"message":        "Surat berhasil diajukan, simpan nomor tracking Anda",
		"nomor_tracking": surat.NomorTracking,
		"data":           surat,
	})
}

// Track adalah endpoint publik: cek status surat dengan nomor tracking.
func (h *SuratHandler) Track(c *fiber.Ctx) error {
	nomor := c.Params("nomor")
	surat, err := h.repo.GetByNomorTracking(nomor)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Nomor tracking tidak ditemukan"})
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"nomor_tracking": surat.NomorTracking,
			"perihal":        surat.Perihal,
			"status":         surat.Status,
			"catatan":        surat.Catatan,
			"diajukan_pada":  surat.CreatedAt,
		},
	})
}

func (h *SuratHandler) GetAll(c *fiber.Ctx) error {
	status := c.Query("status")
	var (
		list []model.Surat
		err  error
	)
	if status != "" {
		list, err = h.repo.GetByStatus(status)
	} else {
		list, err = h.repo.GetAll()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data surat"})
	}
	return c.JSON(fiber.Map{"data": list})
}

type UpdateStatusSuratRequest struct {
	Status  string `json:"status"`
	Catatan string `json:"catatan"`
}

// UpdateStatus memindahkan status surat sesuai tabel transisi dan mengirim
// notifikasi email jika pengirim mencantumkan alamat.
func (h *SuratHandler) UpdateStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req UpdateStatusSuratRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data tidak valid"})
	}

	surat, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Surat tidak ditemukan"})
	}

	if !transisiDiizinkan(transisiSurat, surat.Status, req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Status tidak bisa diubah dari %s ke %s", surat.Status, req.Status),
		})
	}

	surat.Status = req.Status
	if req.Catatan != "" {
		surat.Catatan = req.Catatan
	}
	if err := h.repo.Update(surat); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update status surat"})
	}

	if err := h.mailer.KirimStatusSurat(surat.Email, surat.NomorTracking, surat.Status, surat.Catatan); err != nil {
		// Notifikasi gagal bukan alasan membatalkan update status.
		log.Printf("Gagal mengirim notifikasi email untuk %s: %v", surat.NomorTracking, err)
	}

	return c.JSON(fiber.Map{"message": "Status surat berhasil diubah", "data": surat})
}

func transisiDiizinkan(tabel map[string][]string, dari, ke string) bool {
	for _, s := range tabel[dari] {
		if s == ke {
			return true
		}
	}
	return false
}

// nomorTracking menghasilkan nomor publik yang mudah dibacakan lewat telepon.
func nomorTracking() string {
	kode := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("SRT-%s-%s", time.Now().Format("20060102"), kode)
}
