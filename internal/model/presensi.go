package model

import "time"

// Presensi adalah satu record check-in peserta rapat yang sudah lolos seluruh
// aturan validasi dan kuota. Record bersifat append-only: controller presensi
// tidak pernah mengubah atau menghapus, pembersihan massal hanya lewat operasi
// admin.
//
// Unique index (tanggal, sumber, nip) dan (tanggal, sumber, peserta_id,
// peran_kursi) adalah pengaman terakhir di database terhadap dua kios yang
// balapan. PeranKursi hanya terisi untuk peran yang didefinisikan roster
// (satu kursi per peran); peran bebas disimpan di Peran saja dan tidak ikut
// index, karena dua orang boleh memakai peran bebas yang sama.
type Presensi struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Nama         string    `json:"nama" gorm:"not null"`
	PesertaID    string    `json:"peserta_id" gorm:"size:64;uniqueIndex:uniq_presensi_peran,priority:3"`
	PesertaLabel string    `json:"peserta_label"`
	Peran        *string   `json:"peran" gorm:"size:64"`
	PeranKursi   *string   `json:"-" gorm:"size:64;uniqueIndex:uniq_presensi_peran,priority:4"`
	Instansi     string    `json:"instansi"`
	NoHP         string    `json:"no_hp" gorm:"size:16"`
	NIP          string    `json:"nip" gorm:"column:nip;size:18;uniqueIndex:uniq_presensi_nip,priority:3"`
	Foto         *string   `json:"foto,omitempty" gorm:"type:longtext"`
	Sumber       string    `json:"sumber" gorm:"size:32;uniqueIndex:uniq_presensi_nip,priority:2;uniqueIndex:uniq_presensi_peran,priority:2"`
	Tanggal      string    `json:"tanggal" gorm:"size:10;uniqueIndex:uniq_presensi_nip,priority:1;uniqueIndex:uniq_presensi_peran,priority:1"` // Format YYYY-MM-DD
	CreatedAt    time.Time `json:"created_at"`
}
