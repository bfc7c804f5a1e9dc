package config

import (
	"encoding/json"
	"log"
	"os"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/presensi"
)

// DefaultRoster dipakai jika ROSTER_FILE tidak diset: susunan undangan rapat
// koordinasi rutin lintas OPD. Kuota per slot adalah jumlah kursi per hari.
func DefaultRoster() []presensi.Peserta {
	return []presensi.Peserta{
		{ID: "diskominfo", Label: "Dinas Komunikasi dan Informatika", Kuota: 3},
		{ID: "dinkes", Label: "Dinas Kesehatan", Kuota: 2},
		{ID: "disdik", Label: "Dinas Pendidikan", Kuota: 2},
		{ID: "bappeda", Label: "Bappeda", Kuota: 2, Peran: []string{"Kepala", "Operator"}},
		{ID: "bkpsdm", Label: "BKPSDM", Kuota: 2, Peran: []string{"Kepala", "Operator"}},
		{ID: "umum", Label: "Tamu Umum", Kuota: 5},
	}
}

// LoadRoster membaca daftar undangan dari file JSON yang ditunjuk env
// ROSTER_FILE. Jika tidak diset atau gagal dibaca, jatuh ke DefaultRoster
// agar server tetap bisa jalan di mode pengembangan.
func LoadRoster() *presensi.Roster {
	path := GetEnv("ROSTER_FILE", "")
	if path == "" {
		return presensi.NewRoster(DefaultRoster())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Gagal membaca ROSTER_FILE %s: %v. Memakai roster bawaan.", path, err)
		return presensi.NewRoster(DefaultRoster())
	}

	var daftar []presensi.Peserta
	if err := json.Unmarshal(data, &daftar); err != nil {
		log.Printf("ROSTER_FILE %s bukan JSON valid: %v. Memakai roster bawaan.", path, err)
		return presensi.NewRoster(DefaultRoster())
	}
	return presensi.NewRoster(daftar)
}
