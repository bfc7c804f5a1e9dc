package presensi

import (
	"sync"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"
)

// Admitter menserialisasi urutan baca-snapshot, putuskan, simpan dalam satu
// critical section. Tanpa ini dua kios yang balapan bisa sama-sama lolos cek
// kuota terhadap snapshot yang sudah basi (check-then-act). Unique index di
// tabel presensi tetap menjadi pengaman terakhir lintas proses.
type Admitter struct {
	mu       sync.Mutex
	svc      *Service
	snapshot func() ([]model.Presensi, error)
	simpan   func(*model.Presensi) error
}

// NewAdmitter merangkai service admisi dengan penyedia snapshot dan fungsi
// simpan. Snapshot dibaca ulang setiap panggilan, bukan di-cache.
func NewAdmitter(svc *Service, snapshot func() ([]model.Presensi, error), simpan func(*model.Presensi) error) *Admitter {
	return &Admitter{svc: svc, snapshot: snapshot, simpan: simpan}
}

// Admit memproses satu check-in dari awal sampai tersimpan.
func (a *Admitter) Admit(in Input) (model.Presensi, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	existing, err := a.snapshot()
	if err != nil {
		return model.Presensi{}, err
	}
	entri, err := a.svc.CreateEntry(in, existing)
	if err != nil {
		return model.Presensi{}, err
	}
	if err := a.simpan(&entri); err != nil {
		return model.Presensi{}, err
	}
	return entri, nil
}
