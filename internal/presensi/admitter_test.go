package presensi

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"
)

// gudang adalah penyimpanan in-memory untuk menguji Admitter tanpa database.
type gudang struct {
	mu    sync.Mutex
	entri []model.Presensi
}

func (g *gudang) snapshot() ([]model.Presensi, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	salinan := make([]model.Presensi, len(g.entri))
	copy(salinan, g.entri)
	return salinan, nil
}

func (g *gudang) simpan(p *model.Presensi) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entri = append(g.entri, *p)
	return nil
}

func newTestAdmitter(daftar []Peserta) (*Admitter, *gudang) {
	svc := &Service{
		Roster: NewRoster(daftar),
		Now:    func() time.Time { return time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local) },
		NewID:  uuid.NewString,
	}
	g := &gudang{}
	return NewAdmitter(svc, g.snapshot, g.simpan), g
}

func TestAdmitterSimpanSetelahLolos(t *testing.T) {
	adm, g := newTestAdmitter([]Peserta{{ID: "dinkes", Label: "Dinas Kesehatan", Kuota: 1}})

	entri, err := adm.Admit(Input{
		Nama:      "Andi Wijaya",
		PesertaID: "dinkes",
		NoHP:      "081234567890",
		NIP:       "199002281234567890",
	})
	require.NoError(t, err)
	require.Len(t, g.entri, 1)
	assert.Equal(t, entri.ID, g.entri[0].ID)

	// Penolakan tidak meninggalkan entri apa pun.
	_, err = adm.Admit(Input{
		Nama:      "Budi Santoso",
		PesertaID: "dinkes",
		NoHP:      "081234567891",
		NIP:       "199002281234567891",
	})
	require.ErrorIs(t, err, ErrKuotaPesertaPenuh)
	assert.Len(t, g.entri, 1)
}

// Banyak kios menembak satu kursi secara bersamaan: tepat satu yang lolos,
// sisanya ditolak karena kuota. Tanpa serialisasi di Admitter, beberapa
// goroutine bisa sama-sama lolos cek kuota terhadap snapshot basi.
func TestAdmitterSerialisasiBalapanSatuKursi(t *testing.T) {
	adm, g := newTestAdmitter([]Peserta{
		{ID: "dinkes", Label: "Dinas Kesehatan", Kuota: 1},
		{ID: "umum", Label: "Tamu Umum", Kuota: 100},
	})

	const n = 32
	var wg sync.WaitGroup
	hasil := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := adm.Admit(Input{
				Nama:      fmt.Sprintf("Peserta Balapan Ke%c%c", 'A'+i/26, 'A'+i%26),
				PesertaID: "dinkes",
				NoHP:      "081234567890",
				NIP:       fmt.Sprintf("1990022812345678%02d", i),
			})
			hasil[i] = err
		}(i)
	}
	wg.Wait()

	lolos := 0
	for _, err := range hasil {
		if err == nil {
			lolos++
			continue
		}
		require.ErrorIs(t, err, ErrKuotaPesertaPenuh)
	}
	assert.Equal(t, 1, lolos, "tepat satu kursi boleh terisi")
	assert.Len(t, g.entri, 1)
}

// Error dari penyedia snapshot diteruskan apa adanya dan bukan Rejection.
func TestAdmitterSnapshotGagal(t *testing.T) {
	svc := NewService(NewRoster([]Peserta{{ID: "dinkes", Label: "Dinas Kesehatan", Kuota: 1}}))
	sumberErr := errors.New("koneksi database putus")
	adm := NewAdmitter(svc,
		func() ([]model.Presensi, error) { return nil, sumberErr },
		func(*model.Presensi) error { return nil },
	)

	_, err := adm.Admit(Input{
		Nama:      "Andi Wijaya",
		PesertaID: "dinkes",
		NoHP:      "081234567890",
		NIP:       "199002281234567890",
	})
	require.ErrorIs(t, err, sumberErr)
	var rejection *Rejection
	assert.False(t, errors.As(err, &rejection))
}
