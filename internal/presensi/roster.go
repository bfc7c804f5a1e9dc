package presensi

// Peserta adalah satu slot undangan rapat: instansi/unit dengan kuota kursi
// tetap untuk satu hari. Peran opsional membagi slot menjadi kursi bernama
// (mis. "Kepala" dan "Operator"), masing-masing tepat satu kursi.
type Peserta struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Kuota int      `json:"kuota"`
	Peran []string `json:"peran,omitempty"`
}

// Roster adalah daftar undangan yang dipegang controller presensi.
// Read-only setelah dibuat; disuntikkan dari konfigurasi, bukan dari kode.
type Roster struct {
	daftar map[string]Peserta
	urutan []string
	total  int
}

// NewRoster menyusun roster dari daftar peserta. ID ganda diabaikan
// (yang pertama menang) agar total kuota tidak terhitung dobel.
func NewRoster(daftar []Peserta) *Roster {
	r := &Roster{daftar: make(map[string]Peserta, len(daftar))}
	for _, p := range daftar {
		if _, ada := r.daftar[p.ID]; ada {
			continue
		}
		r.daftar[p.ID] = p
		r.urutan = append(r.urutan, p.ID)
		r.total += p.Kuota
	}
	return r
}

// Cari mengembalikan peserta berdasarkan ID slot undangan.
func (r *Roster) Cari(id string) (Peserta, bool) {
	p, ada := r.daftar[id]
	return p, ada
}

// KuotaTotal adalah jumlah seluruh kursi untuk satu hari.
func (r *Roster) KuotaTotal() int {
	return r.total
}

// Semua mengembalikan peserta sesuai urutan konfigurasi.
func (r *Roster) Semua() []Peserta {
	hasil := make([]Peserta, 0, len(r.urutan))
	for _, id := range r.urutan {
		hasil = append(hasil, r.daftar[id])
	}
	return hasil
}
