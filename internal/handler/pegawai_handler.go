package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/4rul23/Kominfo-PKL-sub000/config"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/repository"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/validator"
)

type PegawaiHandler struct {
	repo repository.PegawaiRepository
}

func NewPegawaiHandler(repo repository.PegawaiRepository) *PegawaiHandler {
	return &PegawaiHandler{repo: repo}
}

type LoginRequest struct {
	NIP      string `json:"nip"`
	Password string `json:"password"`
}

func (h *PegawaiHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	// 1. Cari Pegawai by NIP
	pegawai, err := h.repo.FindByNIP(req.NIP)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "NIP atau Password salah"})
	}
	if !pegawai.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akun sudah dinonaktifkan"})
	}

	// 2. Cek Password
	if err := bcrypt.CompareHashAndPassword([]byte(pegawai.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "NIP atau Password salah"})
	}

	// 3. Generate Token JWT
	token, err := generateToken(pegawai)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"data": fiber.Map{
			"nip":     pegawai.NIP,
			"nama":    pegawai.Nama,
			"role":    pegawai.Role,
			"jabatan": pegawai.Jabatan,
			"bidang":  pegawai.Bidang.NamaBidang,
		},
	})
}

func (h *PegawaiHandler) GetProfile(c *fiber.Ctx) error {
	pegawaiID := uint(c.Locals("user_id").(float64))

	pegawai, err := h.repo.FindByID(pegawaiID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil profil",
		"data":    pegawai,
	})
}

type CreatePegawaiRequest struct {
	Nama     string `json:"nama"`
	NIP      string `json:"nip"`
	Password string `json:"password"`
	Email    string `json:"email"`
	NoHP     string `json:"no_hp"`
	Jabatan  string `json:"jabatan"`
	Role     string `json:"role"`
	BidangID uint   `json:"bidang_id"`
}

// Create mendaftarkan pegawai baru. Hanya Admin (dibatasi di routes).
func (h *PegawaiHandler) Create(c *fiber.Ctx) error {
	var req CreatePegawaiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	nama := validator.ValidateNama(req.Nama)
	if !nama.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": nama.Pesan})
	}
	nip := validator.ValidateNIP(req.NIP)
	if !nip.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": nip.Pesan})
	}
	if len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password minimal 8 karakter"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengenkripsi password"})
	}

	role := req.Role
	if role == "" {
		role = "Petugas"
	}

	pegawai := model.Pegawai{
		Nama:     nama.Nilai,
		NIP:      nip.Nilai,
		Password: string(hashedPassword),
		Email:    req.Email,
		NoHP:     req.NoHP,
		Jabatan:  req.Jabatan,
		Role:     role,
		BidangID: req.BidangID,
		IsActive: true,
	}
	if err := h.repo.Create(&pegawai); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "NIP sudah terdaftar"})
	}

	return c.JSON(fiber.Map{"message": "Pegawai berhasil didaftarkan", "data": pegawai})
}

func (h *PegawaiHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pegawai"})
	}
	return c.JSON(fiber.Map{"data": list})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (h *PegawaiHandler) ChangePassword(c *fiber.Ctx) error {
	pegawaiID := uint(c.Locals("user_id").(float64))

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	pegawai, err := h.repo.FindByID(pegawaiID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	// Cek Password Lama
	if err := bcrypt.CompareHashAndPassword([]byte(pegawai.Password), []byte(req.OldPassword)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password lama salah"})
	}
	if len(req.NewPassword) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password minimal 8 karakter"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengenkripsi password"})
	}

	pegawai.Password = string(hashedPassword)
	if err := h.repo.Update(pegawai); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update password"})
	}

	return c.JSON(fiber.Map{"message": "Password berhasil diubah"})
}

// Helper function untuk membuat JWT
func generateToken(pegawai *model.Pegawai) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   pegawai.ID,
		"nip":       pegawai.NIP,
		"role":      pegawai.Role,
		"bidang_id": pegawai.BidangID,
		"exp":       time.Now().Add(time.Hour * 24).Unix(), // Token berlaku 24 jam
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}
