package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/repository"
)

type BidangHandler struct {
	repo repository.BidangRepository
}

func NewBidangHandler(repo repository.BidangRepository) *BidangHandler {
	return &BidangHandler{repo: repo}
}

// GetAll dipakai kios untuk dropdown "bidang yang dituju".
func (h *BidangHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data bidang"})
	}
	return c.JSON(fiber.Map{"data": list})
}

type BuatBidangRequest struct {
	NamaBidang string `json:"nama_bidang"`
}

func (h *BidangHandler) Create(c *fiber.Ctx) error {
	var req BuatBidangRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data tidak valid"})
	}
	if strings.TrimSpace(req.NamaBidang) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama bidang wajib diisi"})
	}

	bidang := model.Bidang{NamaBidang: strings.TrimSpace(req.NamaBidang)}
	if err := h.repo.Create(&bidang); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Nama bidang sudah terdaftar"})
	}
	return c.JSON(fiber.Map{"message": "Bidang berhasil dibuat", "data": bidang})
}
