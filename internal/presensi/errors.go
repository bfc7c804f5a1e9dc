package presensi

import "errors"

// Kategori penolakan presensi. Handler memetakan sentinel ini ke status HTTP
// lewat errors.Is; pesan untuk pengguna dibawa oleh Rejection.
var (
	ErrIsianTidakValid       = errors.New("isian tidak valid")
	ErrPesertaTidakTerdaftar = errors.New("peserta tidak terdaftar")
	ErrKuotaTotalPenuh       = errors.New("kuota total penuh")
	ErrNIPSudahPresensi      = errors.New("nip sudah presensi")
	ErrKuotaPesertaPenuh     = errors.New("kuota peserta penuh")
	ErrNamaSudahPresensi     = errors.New("nama sudah presensi")
	ErrPeranWajibDipilih     = errors.New("peran wajib dipilih")
	ErrPeranSudahTerisi      = errors.New("peran sudah terisi")
)

// Rejection adalah penolakan satu check-in: satu kategori sentinel plus pesan
// siap-tampil. Error() mengembalikan pesan apa adanya agar handler bisa
// meneruskannya langsung ke pengguna.
type Rejection struct {
	kind  error
	pesan string
}

func (r *Rejection) Error() string { return r.pesan }
func (r *Rejection) Unwrap() error { return r.kind }

func tolak(kind error, pesan string) error {
	return &Rejection{kind: kind, pesan: pesan}
}
