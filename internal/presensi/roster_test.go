package presensi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRosterAbaikanIDGanda(t *testing.T) {
	r := NewRoster([]Peserta{
		{ID: "dinkes", Label: "Dinas Kesehatan", Kuota: 2},
		{ID: "dinkes", Label: "Duplikat", Kuota: 10},
		{ID: "umum", Label: "Tamu Umum", Kuota: 3},
	})

	assert.Equal(t, 5, r.KuotaTotal(), "kuota ID ganda tidak boleh terhitung dobel")

	p, ada := r.Cari("dinkes")
	assert.True(t, ada)
	assert.Equal(t, "Dinas Kesehatan", p.Label)

	_, ada = r.Cari("fiktif")
	assert.False(t, ada)

	semua := r.Semua()
	assert.Len(t, semua, 2)
	assert.Equal(t, "dinkes", semua[0].ID)
	assert.Equal(t, "umum", semua[1].ID)
}
