// Package validator berisi aturan validasi isian formulir buku tamu dan
// presensi rapat. Semua fungsi murni: tanpa I/O, tidak pernah panic, dan
// selalu mengembalikan Result (bukan error).
package validator

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Result adalah hasil validasi satu field.
// Nilai hanya terisi jika Valid; Pesan siap ditampilkan ke pengguna.
type Result struct {
	Valid bool   `json:"valid"`
	Pesan string `json:"pesan,omitempty"`
	Nilai string `json:"nilai,omitempty"`
}

func invalid(pesan string) Result { return Result{Pesan: pesan} }
func valid(nilai string) Result   { return Result{Valid: true, Nilai: nilai} }

// Karakter non-huruf yang diperbolehkan dalam nama.
const namaSeparator = "'`.- "

// Compact form yang jelas bukan nama sungguhan.
var namaPlaceholder = map[string]bool{
	"asd":      true,
	"asdf":     true,
	"asdfg":    true,
	"qwerty":   true,
	"test":     true,
	"testing":  true,
	"tes":      true,
	"coba":     true,
	"cobacoba": true,
}

// Pola asal ketik dari deretan tombol keyboard.
var namaMashPattern = regexp.MustCompile(`^(asd|qwe|zxc)[a-z]*$`)

// ValidateNama menormalkan dan memvalidasi nama lengkap.
// Spasi beruntun dirapatkan, lalu dicek panjang, karakter, dan pola asal ketik.
func ValidateNama(raw string) Result {
	nama := strings.Join(strings.Fields(raw), " ")
	if nama == "" {
		return invalid("Nama wajib diisi")
	}
	if utf8.RuneCountInString(nama) > 80 {
		return invalid("Nama terlalu panjang (maksimal 80 karakter)")
	}
	for _, r := range nama {
		if !unicode.IsLetter(r) && !strings.ContainsRune(namaSeparator, r) {
			return invalid("Nama mengandung karakter yang tidak diperbolehkan")
		}
	}
	compact := strings.Map(func(r rune) rune {
		if strings.ContainsRune(namaSeparator, r) {
			return -1
		}
		return r
	}, nama)
	if utf8.RuneCountInString(compact) < 5 {
		return invalid("Nama terlalu pendek (minimal 5 huruf)")
	}
	// Satu huruf yang sama >= 5 kali berturut-turut = indikasi asal ketik.
	run, prev := 0, rune(-1)
	for _, r := range strings.ToLower(nama) {
		if r == prev {
			run++
		} else {
			run, prev = 1, r
		}
		if run >= 5 {
			return invalid("Nama tidak valid")
		}
	}
	lowerCompact := strings.ToLower(compact)
	if namaPlaceholder[lowerCompact] || namaMashPattern.MatchString(lowerCompact) {
		return invalid("Nama tidak valid")
	}
	return valid(nama)
}

var (
	nonDigit     = regexp.MustCompile(`[^0-9]`)
	noHPPattern  = regexp.MustCompile(`^628[0-9]{7,11}$`)
	noHPNolDepan = regexp.MustCompile(`^620+`)
)

// ValidateNoHP menormalkan nomor HP ke format internasional (awalan 62)
// dan memvalidasi panjang nomor seluler Indonesia.
func ValidateNoHP(raw string) Result {
	digits := nonDigit.ReplaceAllString(raw, "")
	switch {
	case strings.HasPrefix(digits, "62"):
		// sudah format internasional
	case strings.HasPrefix(digits, "0"):
		digits = "62" + digits[1:]
	case strings.HasPrefix(digits, "8"):
		digits = "62" + digits
	}
	if digits == "" {
		return invalid("Nomor HP wajib diisi")
	}
	if !noHPPattern.MatchString(digits) {
		return invalid("Format nomor HP tidak valid")
	}
	if noHPNolDepan.MatchString(digits) {
		return invalid("Nomor HP diawali digit yang tidak valid")
	}
	return valid(digits)
}

// ValidateNIP memvalidasi NIP 18 digit. Delapan digit pertama harus berupa
// tanggal lahir YYYYMMDD yang benar-benar ada di kalender (tahun 1940-2100).
func ValidateNIP(raw string) Result {
	digits := nonDigit.ReplaceAllString(raw, "")
	if digits == "" {
		return invalid("NIP wajib diisi")
	}
	if len(digits) != 18 {
		return invalid("NIP harus terdiri dari 18 digit")
	}
	semuaSama := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			semuaSama = false
			break
		}
	}
	if semuaSama {
		return invalid("NIP tidak valid (digit berulang)")
	}
	tahun := atoi(digits[0:4])
	bulan := atoi(digits[4:6])
	hari := atoi(digits[6:8])
	if tahun < 1940 || tahun > 2100 {
		return invalid("Tanggal lahir pada NIP tidak valid")
	}
	// time.Date menormalkan tanggal mustahil (mis. 30 Februari menjadi 1/2
	// Maret), jadi cukup cek hasilnya kembali ke angka semula atau tidak.
	t := time.Date(tahun, time.Month(bulan), hari, 0, 0, 0, 0, time.UTC)
	if t.Year() != tahun || int(t.Month()) != bulan || t.Day() != hari {
		return invalid("Tanggal lahir pada NIP tidak valid")
	}
	return valid(digits)
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
