package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed Bidang (unit kerja tujuan tamu/surat)
	bidangs := []model.Bidang{
		{NamaBidang: "Sekretariat"},
		{NamaBidang: "Informatika"},
		{NamaBidang: "Komunikasi Publik"},
		{NamaBidang: "Persandian dan Statistik"},
	}
	for _, b := range bidangs {
		db.FirstOrCreate(&b, model.Bidang{NamaBidang: b.NamaBidang})
	}

	var sekretariat model.Bidang
	db.Where("nama_bidang = ?", "Sekretariat").First(&sekretariat)

	// 2. Seed Akun Admin Pertama
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)

	admin := model.Pegawai{
		Nama:     "Administrator Utama",
		NIP:      "197001011234567890",
		Password: string(hashedPassword),
		Jabatan:  "Sekretaris Dinas",
		Role:     "Admin",
		BidangID: sekretariat.ID,
		IsActive: true,
	}
	result := db.FirstOrCreate(&admin, model.Pegawai{NIP: admin.NIP})
	if result.Error == nil {
		// Paksa update password agar selalu sinkron dengan "admin123" meskipun user sudah ada
		db.Model(&admin).Update("password", string(hashedPassword))
		log.Println("Seeding Admin berhasil!")
	}

	// 3. Seed Petugas Front Desk
	var informatika model.Bidang
	db.Where("nama_bidang = ?", "Informatika").First(&informatika)

	petugas := model.Pegawai{
		Nama:     "Budi Petugas",
		NIP:      "199002281234567890",
		Password: string(hashedPassword),
		Jabatan:  "Staf Front Desk",
		Role:     "Petugas",
		BidangID: informatika.ID,
		IsActive: true,
	}
	db.FirstOrCreate(&petugas, model.Pegawai{NIP: petugas.NIP})
}
