// Package presensi memuat controller admisi check-in rapat: validasi isian,
// penegakan kuota (total, per peserta, per peran), dan deteksi duplikat.
// Seluruh aturan kuota dan duplikat hidup di sini, tidak di handler.
package presensi

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"
	"github.com/4rul23/Kominfo-PKL-sub000/internal/validator"
)

// SumberBukuTamu menandai entri yang berasal dari kios buku tamu digital.
// Hitungan kuota harian hanya memperhitungkan entri dengan sumber ini.
const SumberBukuTamu = "buku-tamu-digital"

// Input adalah isian mentah dari formulir check-in. Semua field berupa string
// apa adanya; normalisasi sepenuhnya urusan CreateEntry.
type Input struct {
	Nama      string `json:"nama"`
	PesertaID string `json:"peserta_id"`
	Peran     string `json:"peran"`
	Instansi  string `json:"instansi"`
	NoHP      string `json:"no_hp"`
	NIP       string `json:"nip"`
	Foto      string `json:"foto"`
}

// Service memutuskan diterima/tidaknya satu check-in terhadap snapshot entri
// yang sudah ada. Murni terhadap inputnya: tidak menyimpan, tidak mengunci,
// tidak melakukan I/O. Serialisasi terhadap snapshot adalah urusan Admitter.
type Service struct {
	Roster *Roster
	Now    func() time.Time
	NewID  func() string
}

func NewService(roster *Roster) *Service {
	return &Service{
		Roster: roster,
		Now:    time.Now,
		NewID:  uuid.NewString,
	}
}

// CreateEntry menjalankan seluruh aturan admisi secara berurutan dan berhenti
// pada pelanggaran pertama. Jika lolos, mengembalikan record presensi lengkap
// siap simpan; pemanggil bertanggung jawab mempersistenkannya sebelum
// memanggil lagi dengan snapshot berikutnya.
func (s *Service) CreateEntry(in Input, existing []model.Presensi) (model.Presensi, error) {
	var kosong model.Presensi

	// 1. Validasi field, gagal pada pesan pertama.
	nama := validator.ValidateNama(in.Nama)
	if !nama.Valid {
		return kosong, tolak(ErrIsianTidakValid, nama.Pesan)
	}
	noHP := validator.ValidateNoHP(in.NoHP)
	if !noHP.Valid {
		return kosong, tolak(ErrIsianTidakValid, noHP.Pesan)
	}
	nip := validator.ValidateNIP(in.NIP)
	if !nip.Valid {
		return kosong, tolak(ErrIsianTidakValid, nip.Pesan)
	}

	// 2. Slot undangan harus ada di roster.
	pesertaID := strings.TrimSpace(in.PesertaID)
	if pesertaID == "" {
		return kosong, tolak(ErrPesertaTidakTerdaftar, "Instansi/unit peserta wajib dipilih")
	}
	peserta, ada := s.Roster.Cari(pesertaID)
	if !ada {
		return kosong, tolak(ErrPesertaTidakTerdaftar, "Instansi/unit ini tidak ada dalam daftar undangan")
	}

	// 3. Hanya entri hari ini dari kanal yang sama yang dihitung.
	now := s.Now()
	tanggal := now.Format("2006-01-02")
	hariIni := SaringHarian(existing, tanggal)

	// 4. Kuota total seluruh undangan.
	if len(hariIni) >= s.Roster.KuotaTotal() {
		return kosong, tolak(ErrKuotaTotalPenuh, "Kuota presensi hari ini sudah penuh")
	}

	// 5. Satu NIP satu kursi per hari, lintas peserta.
	for i := range hariIni {
		if hariIni[i].NIP == nip.Nilai {
			return kosong, tolak(ErrNIPSudahPresensi, "NIP ini sudah melakukan presensi hari ini")
		}
	}

	// 6. Kuota kursi slot undangan ini.
	var seSlot []model.Presensi
	for i := range hariIni {
		if hariIni[i].PesertaID == peserta.ID {
			seSlot = append(seSlot, hariIni[i])
		}
	}
	if len(seSlot) >= peserta.Kuota {
		return kosong, tolak(ErrKuotaPesertaPenuh,
			fmt.Sprintf("Kuota %s sudah penuh (%d/%d)", peserta.Label, len(seSlot), peserta.Kuota))
	}

	// 7. Nama yang sama tidak boleh dua kali di slot yang sama.
	kunci := namaKunci(nama.Nilai)
	for i := range seSlot {
		if namaKunci(seSlot[i].Nama) == kunci {
			return kosong, tolak(ErrNamaSudahPresensi,
				fmt.Sprintf("Nama ini sudah presensi untuk %s hari ini", peserta.Label))
		}
	}

	// 8. Peran: wajib dan valid jika slot mendefinisikan peran, satu kursi per
	// peran. Slot tanpa daftar peran menerima peran bebas atau kosong.
	peranIn := strings.TrimSpace(in.Peran)
	var peran, peranKursi *string
	if len(peserta.Peran) > 0 {
		if !slices.Contains(peserta.Peran, peranIn) {
			return kosong, tolak(ErrPeranWajibDipilih,
				fmt.Sprintf("Pilih peran yang tersedia untuk %s", peserta.Label))
		}
		for i := range seSlot {
			if seSlot[i].PeranKursi != nil && *seSlot[i].PeranKursi == peranIn {
				return kosong, tolak(ErrPeranSudahTerisi,
					fmt.Sprintf("Kursi %s untuk %s sudah terisi", peranIn, peserta.Label))
			}
		}
		// Hanya peran ber-kursi yang masuk kolom ber-index unik; peran
		// bebas boleh sama antar orang di slot yang sama.
		peran = &peranIn
		peranKursi = &peranIn
	} else if peranIn != "" {
		peran = &peranIn
	}

	// 9-10. Label selalu dari roster, instansi default ke label, lalu susun
	// record final dari nilai-nilai ternormalisasi.
	instansi := strings.TrimSpace(in.Instansi)
	if instansi == "" {
		instansi = peserta.Label
	}
	var foto *string
	if f := strings.TrimSpace(in.Foto); f != "" {
		foto = &f
	}

	return model.Presensi{
		ID:           s.NewID(),
		Nama:         nama.Nilai,
		PesertaID:    peserta.ID,
		PesertaLabel: peserta.Label,
		Peran:        peran,
		PeranKursi:   peranKursi,
		Instansi:     instansi,
		NoHP:         noHP.Nilai,
		NIP:          nip.Nilai,
		Foto:         foto,
		Sumber:       SumberBukuTamu,
		Tanggal:      tanggal,
		CreatedAt:    now,
	}, nil
}

// SaringHarian memilih entri pada tanggal tersebut yang berasal dari kios
// buku tamu. Entri kanal lain tidak pernah memengaruhi kuota.
func SaringHarian(entri []model.Presensi, tanggal string) []model.Presensi {
	var hasil []model.Presensi
	for i := range entri {
		if entri[i].Tanggal == tanggal && entri[i].Sumber == SumberBukuTamu {
			hasil = append(hasil, entri[i])
		}
	}
	return hasil
}

// namaKunci menyamakan nama untuk deteksi duplikat: huruf kecil, non-huruf
// dibuang. Huruf beraksen dipertahankan apa adanya, jadi "José" != "Jose".
func namaKunci(nama string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(nama) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
