package model

import "gorm.io/gorm"

// Bidang adalah unit kerja internal (direktori OPD/bidang tujuan).
type Bidang struct {
	gorm.Model
	NamaBidang string    `json:"nama_bidang" gorm:"unique;not null"`
	Pegawai    []Pegawai `json:"pegawai"`
}
