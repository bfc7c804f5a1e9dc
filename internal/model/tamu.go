package model

import "gorm.io/gorm"

// Tamu adalah satu registrasi kunjungan dari kios buku tamu.
type Tamu struct {
	gorm.Model
	Nama      string  `json:"nama" gorm:"not null"`
	Instansi  string  `json:"instansi"`
	Keperluan string  `json:"keperluan"`
	NoHP      string  `json:"no_hp"`
	BidangID  *uint   `json:"bidang_id"` // Bidang yang dituju
	Foto      *string `json:"foto,omitempty" gorm:"type:longtext"`
	Tanggal   string  `json:"tanggal" gorm:"size:10;index"` // Format YYYY-MM-DD

	// Relasi
	Bidang *Bidang `json:"bidang" gorm:"foreignKey:BidangID"`
}
