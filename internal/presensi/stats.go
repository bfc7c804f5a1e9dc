package presensi

import "github.com/4rul23/Kominfo-PKL-sub000/internal/model"

// RekapPeserta adalah satu baris rekap kuota untuk dashboard: keterisian dan
// sisa kursi per slot undangan, plus keterisian per peran jika ada.
type RekapPeserta struct {
	PesertaID string         `json:"peserta_id"`
	Label     string         `json:"label"`
	Kuota     int            `json:"kuota"`
	Terisi    int            `json:"terisi"`
	Sisa      int            `json:"sisa"`
	Peran     map[string]int `json:"peran,omitempty"`
}

// RekapKuota menghitung keterisian kursi hari ini dari snapshot entri.
// Murni turunan dari snapshot, bukan state tersendiri.
func (s *Service) RekapKuota(existing []model.Presensi) []RekapPeserta {
	hariIni := SaringHarian(existing, s.Now().Format("2006-01-02"))

	semua := s.Roster.Semua()
	hasil := make([]RekapPeserta, 0, len(semua))
	for _, p := range semua {
		baris := RekapPeserta{PesertaID: p.ID, Label: p.Label, Kuota: p.Kuota}
		if len(p.Peran) > 0 {
			baris.Peran = make(map[string]int, len(p.Peran))
			for _, nama := range p.Peran {
				baris.Peran[nama] = 0
			}
		}
		for i := range hariIni {
			if hariIni[i].PesertaID != p.ID {
				continue
			}
			baris.Terisi++
			if baris.Peran != nil && hariIni[i].PeranKursi != nil {
				baris.Peran[*hariIni[i].PeranKursi]++
			}
		}
		baris.Sisa = p.Kuota - baris.Terisi
		if baris.Sisa < 0 {
			baris.Sisa = 0
		}
		hasil = append(hasil, baris)
	}
	return hasil
}
