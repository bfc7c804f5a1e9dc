package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/repository"
)

// Transisi status kasus yang diizinkan di portal admin.
var transisiKasus = map[string][]string{
	model.KasusBaru:       {model.KasusDitugaskan, model.KasusEskalasi},
	model.KasusDitugaskan: {model.KasusDiproses, model.KasusEskalasi},
	model.KasusDiproses:   {model.KasusSelesai, model.KasusEskalasi},
	model.KasusEskalasi:   {model.KasusDitugaskan, model.KasusSelesai},
}

type KasusHandler struct {
	repo        repository.KasusRepository
	pegawaiRepo repository.PegawaiRepository
}

func NewKasusHandler(repo repository.KasusRepository, pegawaiRepo repository.PegawaiRepository) *KasusHandler {
	return &KasusHandler{repo: repo, pegawaiRepo: pegawaiRepo}
}

type BuatKasusRequest struct {
	Judul     string `json:"judul"`
	Deskripsi string `json:"deskripsi"`
	SuratID   *uint  `json:"surat_id"`
	TamuID    *uint  `json:"tamu_id"`
}

// Create membuat kasus tindak lanjut dari surat atau kunjungan tamu.
func (h *KasusHandler) Create(c *fiber.Ctx) error {
	var req BuatKasusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data tidak valid"})
	}
	if strings.TrimSpace(req.Judul) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Judul kasus wajib diisi"})
	}

	kasus := model.Kasus{
		Judul:     strings.TrimSpace(req.Judul),
		Deskripsi: req.Deskripsi,
		Status:    model.KasusBaru,
		Prioritas: model.PrioritasNormal,
		SuratID:   req.SuratID,
		TamuID:    req.TamuID,
	}
	if err := h.repo.Create(&kasus); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat kasus"})
	}

	return c.JSON(fiber.Map{"message": "Kasus berhasil dibuat", "data": kasus})
}

func (h *KasusHandler) GetAll(c *fiber.Ctx) error {
	status := c.Query("status")
	var (
		list []model.Kasus
		err  error
	)
	if status != "" {
		list, err = h.repo.GetByStatus(status)
	} else {
		list, err = h.repo.GetAll()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data kasus"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *KasusHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	kasus, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kasus tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"data": kasus})
}

type TugaskanKasusRequest struct {
	PetugasID uint `json:"petugas_id"`
}

// Assign menugaskan kasus ke seorang pegawai dan memindahkan status ke
// DITUGASKAN.
func (h *KasusHandler) Assign(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req TugaskanKasusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data tidak valid"})
	}

	kasus, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kasus tidak ditemukan"})
	}
	if !transisiDiizinkan(transisiKasus, kasus.Status, model.KasusDitugaskan) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Kasus berstatus %s tidak bisa ditugaskan", kasus.Status),
		})
	}

	petugas, err := h.pegawaiRepo.FindByID(req.PetugasID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Petugas tidak ditemukan"})
	}

	kasus.PetugasID = &petugas.ID
	kasus.Status = model.KasusDitugaskan
	if err := h.repo.Update(kasus); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menugaskan kasus"})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Kasus ditugaskan ke %s", petugas.Nama),
		"data":    kasus,
	})
}

type UpdateStatusKasusRequest struct {
	Status  string `json:"status"`
	Catatan string `json:"catatan"`
}

func (h *KasusHandler) UpdateStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req UpdateStatusKasusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data tidak valid"})
	}

	kasus, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kasus tidak ditemukan"})
	}
	if !transisiDiizinkan(transisiKasus, kasus.Status, req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Status tidak bisa diubah dari %s ke %s", kasus.Status, req.Status),
		})
	}

	kasus.Status = req.Status
	if req.Catatan != "" {
		kasus.Catatan = req.Catatan
	}
	if err := h.repo.Update(kasus); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update status kasus"})
	}

	return c.JSON(fiber.Map{"message": "Status kasus berhasil diubah", "data": kasus})
}

// Eskalasi menaikkan kasus: status DIESKALASI, prioritas naik ke TINGGI.
func (h *KasusHandler) Eskalasi(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	kasus, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kasus tidak ditemukan"})
	}
	if !transisiDiizinkan(transisiKasus, kasus.Status, model.KasusEskalasi) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Kasus berstatus %s tidak bisa dieskalasi", kasus.Status),
		})
	}

	kasus.Status = model.KasusEskalasi
	kasus.Prioritas = model.PrioritasTinggi
	if err := h.repo.Update(kasus); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal eskalasi kasus"})
	}

	return c.JSON(fiber.Map{"message": "Kasus berhasil dieskalasi", "data": kasus})
}
