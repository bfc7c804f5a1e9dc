package model

import "gorm.io/gorm"

// Status kasus di portal admin. Transisi yang sah diatur di handler.
const (
	KasusBaru       = "BARU"
	KasusDitugaskan = "DITUGASKAN"
	KasusDiproses   = "DIPROSES"
	KasusSelesai    = "SELESAI"
	KasusEskalasi   = "DIESKALASI"
)

// Prioritas kasus.
const (
	PrioritasRendah = "RENDAH"
	PrioritasNormal = "NORMAL"
	PrioritasTinggi = "TINGGI"
)

// Kasus adalah tindak lanjut internal atas surat atau kunjungan tamu:
// triase, penugasan ke pegawai, dan eskalasi.
type Kasus struct {
	gorm.Model
	Judul     string `json:"judul" gorm:"not null"`
	Deskripsi string `json:"deskripsi"`
	Status    string `json:"status" gorm:"default:BARU"`
	Prioritas string `json:"prioritas" gorm:"default:NORMAL"`
	SuratID   *uint  `json:"surat_id"`
	TamuID    *uint  `json:"tamu_id"`
	PetugasID *uint  `json:"petugas_id"`
	Catatan   string `json:"catatan"`

	// Relasi
	Surat   *Surat   `json:"surat" gorm:"foreignKey:SuratID"`
	Tamu    *Tamu    `json:"tamu" gorm:"foreignKey:TamuID"`
	Petugas *Pegawai `json:"petugas" gorm:"foreignKey:PetugasID"`
}
