package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNama(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantValid bool
		wantNilai string
	}{
		{"nama wajar", "Andi Wijaya", true, "Andi Wijaya"},
		{"spasi beruntun dirapatkan", "  Siti   Nur  Aisyah ", true, "Siti Nur Aisyah"},
		{"nama dengan tanda baca", "Muh. Al-Farizi", true, "Muh. Al-Farizi"},
		{"nama dengan apostrof", "Nur Sa'adah Putri", true, "Nur Sa'adah Putri"},
		{"kosong", "   ", false, ""},
		{"terlalu pendek setelah dirapatkan", "A. B.", false, ""},
		{"angka tidak diperbolehkan", "Budi 123", false, ""},
		{"simbol tidak diperbolehkan", "Budi@Santoso", false, ""},
		{"asal ketik deret keyboard", "asdfgh", false, ""},
		{"asal ketik baris atas", "qwertyuiop", false, ""},
		{"asal ketik baris bawah", "zxcvbn", false, ""},
		{"placeholder test", "testing", false, ""},
		{"huruf berulang lima kali", "Buuuuudi Santoso", false, ""},
		{"huruf berulang kapital campur", "BuUuUudi Santoso", false, ""},
		{"empat kali masih boleh", "Muhammad Haaaris", true, "Muhammad Haaaris"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateNama(tt.raw)
			assert.Equal(t, tt.wantValid, got.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.wantNilai, got.Nilai)
				assert.Empty(t, got.Pesan)
			} else {
				assert.NotEmpty(t, got.Pesan)
			}
		})
	}
}

func TestValidateNamaTerlaluPanjang(t *testing.T) {
	panjang := ""
	for i := 0; i < 9; i++ {
		panjang += "Abcdefghi "
	}
	got := ValidateNama(panjang) // 89 karakter setelah trim
	assert.False(t, got.Valid)
	assert.Equal(t, "Nama terlalu panjang (maksimal 80 karakter)", got.Pesan)
}

func TestValidateNoHP(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantValid bool
		wantNilai string
	}{
		{"awalan nol lokal", "081234567890", true, "6281234567890"},
		{"awalan 62", "6281234567890", true, "6281234567890"},
		{"awalan 8 tanpa nol", "81234567890", true, "6281234567890"},
		{"dengan tanda baca", "+62 812-3456-7890", true, "6281234567890"},
		{"kosong", "", false, ""},
		{"hanya huruf", "abc", false, ""},
		{"terlalu pendek", "08123456", false, ""},
		{"terlalu panjang", "0812345678901234", false, ""},
		{"bukan nomor seluler", "0211234567", false, ""},
		{"nol setelah kode negara", "6201234567890", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateNoHP(tt.raw)
			assert.Equal(t, tt.wantValid, got.Valid, "pesan: %s", got.Pesan)
			if tt.wantValid {
				assert.Equal(t, tt.wantNilai, got.Nilai)
			}
		})
	}
}

// Normalisasi dua kali harus menghasilkan nilai yang sama (idempoten).
func TestValidateNoHPIdempoten(t *testing.T) {
	for _, raw := range []string{"081234567890", "6281234567890", "8123456789", "+62 812 3456 789"} {
		pertama := ValidateNoHP(raw)
		assert.True(t, pertama.Valid, raw)
		kedua := ValidateNoHP(pertama.Nilai)
		assert.True(t, kedua.Valid)
		assert.Equal(t, pertama.Nilai, kedua.Nilai)
	}
}

func TestValidateNIP(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantValid bool
	}{
		{"nip wajar", "199002281234567890", true},
		{"dengan spasi", "19900228 1234 567890", true},
		{"28 februari non kabisat", "199002280000000001", true},
		{"29 februari kabisat", "199202290000000001", true},
		{"kosong", "", false},
		{"kurang dari 18 digit", "1990022812345", false},
		{"lebih dari 18 digit", "1990022812345678901", false},
		{"semua digit sama", "111111111111111111", false},
		{"bulan 13", "199013010000000001", false},
		{"30 februari", "199002300000000001", false},
		{"29 februari non kabisat", "199002290000000001", false},
		{"31 april", "199004310000000001", false},
		{"tahun di bawah 1940", "193902280000000001", false},
		{"tahun di atas 2100", "210102280000000001", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateNIP(tt.raw)
			assert.Equal(t, tt.wantValid, got.Valid, "pesan: %s", got.Pesan)
			if tt.wantValid {
				assert.Len(t, got.Nilai, 18)
			}
		})
	}
}
