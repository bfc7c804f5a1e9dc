package model

import "gorm.io/gorm"

// Status surat elektronik. Transisi yang sah diatur di handler (tabel statis).
const (
	SuratDiterima     = "DITERIMA"
	SuratDiverifikasi = "DIVERIFIKASI"
	SuratDiproses     = "DIPROSES"
	SuratSelesai      = "SELESAI"
	SuratDitolak      = "DITOLAK"
)

// Surat adalah satu pengajuan surat elektronik beserta nomor tracking publik.
type Surat struct {
	gorm.Model
	NomorTracking string  `json:"nomor_tracking" gorm:"unique;not null"`
	Perihal       string  `json:"perihal" gorm:"not null"`
	Pengirim      string  `json:"pengirim"`
	Instansi      string  `json:"instansi"`
	NoHP          string  `json:"no_hp"`
	Email         string  `json:"email"`
	BidangID      *uint   `json:"bidang_id"`
	Lampiran      *string `json:"lampiran,omitempty" gorm:"type:longtext"`
	Status        string  `json:"status" gorm:"default:DITERIMA"`
	Catatan       string  `json:"catatan"`

	// Relasi
	Bidang *Bidang `json:"bidang" gorm:"foreignKey:BidangID"`
}
