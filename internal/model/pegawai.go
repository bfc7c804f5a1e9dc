package model

import "gorm.io/gorm"

type Pegawai struct {
	gorm.Model
	BidangID uint   `json:"bidang_id"`
	Nama     string `json:"nama"`
	NIP      string `json:"nip" gorm:"column:nip;unique;not null"`
	Password string `json:"-"`
	Email    string `json:"email"`
	NoHP     string `json:"no_hp"`
	Jabatan  string `json:"jabatan"`
	Role     string `json:"role" gorm:"default:Petugas"` // Admin / Petugas
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Relasi
	Bidang Bidang  `json:"bidang" gorm:"foreignKey:BidangID"`
	Kasus  []Kasus `json:"kasus" gorm:"foreignKey:PetugasID"`
}
