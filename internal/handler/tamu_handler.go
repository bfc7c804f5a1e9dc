package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/repository"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/validator"
)

type TamuHandler struct {
	repo repository.TamuRepository
}

func NewTamuHandler(repo repository.TamuRepository) *TamuHandler {
	return &TamuHandler{repo: repo}
}

type RegistrasiTamuRequest struct {
	Nama      string `json:"nama"`
	Instansi  string `json:"instansi"`
	Keperluan string `json:"keperluan"`
	NoHP      string `json:"no_hp"`
	BidangID  *uint  `json:"bidang_id"`
	Foto      string `json:"foto"`
}

// Create mendaftarkan kunjungan dari kios buku tamu. Nama dan nomor HP
// melewati validator yang sama dengan presensi rapat.
func (h *TamuHandler) Create(c *fiber.Ctx) error {
	var req RegistrasiTamuRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data tidak valid"})
	}

	nama := validator.ValidateNama(req.Nama)
	if !nama.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": nama.Pesan})
	}
	noHP := validator.ValidateNoHP(req.NoHP)
	if !noHP.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": noHP.Pesan})
	}
	if req.Keperluan == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Keperluan kunjungan wajib diisi"})
	}

	tamu := model.Tamu{
		Nama:      nama.Nilai,
		Instansi:  req.Instansi,
		Keperluan: req.Keperluan,
		NoHP:      noHP.Nilai,
		BidangID:  req.BidangID,
		Tanggal:   time.Now().Format("2006-01-02"),
	}
	if req.Foto != "" {
		tamu.Foto = &req.Foto
	}

	if err := h.repo.Create(&tamu); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan data tamu"})
	}

	return c.JSON(fiber.Map{
		"message": "Selamat datang! Registrasi kunjungan berhasil",
		"data":    tamu,
	})
}

func (h *TamuHandler) GetHariIni(c *fiber.Ctx) error {
	tanggal := time.Now().Format("2006-01-02")
	list, err := h.repo.GetByTanggal(tanggal)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data tamu"})
	}
	return c.JSON(fiber.Map{"data": list, "tanggal": tanggal})
}

func (h *TamuHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data tamu"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *TamuHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	tamu, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data tamu tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"data": tamu})
}
