package presensi

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	svc *Service
}

func (s *ServiceSuite) SetupTest() {
	urut := 0
	s.svc = &Service{
		Roster: NewRoster([]Peserta{
			{ID: "diskominfo", Label: "Dinas Komunikasi dan Informatika", Kuota: 2},
			{ID: "dinkes", Label: "Dinas Kesehatan", Kuota: 1},
			{ID: "bappeda", Label: "Bappeda", Kuota: 2, Peran: []string{"Kepala", "Operator"}},
		}),
		Now: func() time.Time {
			return time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
		},
		NewID: func() string {
			urut++
			return fmt.Sprintf("id-%d", urut)
		},
	}
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) input(nama, pesertaID string, nip string) Input {
	return Input{
		Nama:      nama,
		PesertaID: pesertaID,
		NoHP:      "081234567890",
		NIP:       nip,
	}
}

// admit adalah jalur bantu: entri valid yang diasumsikan lolos.
func (s *ServiceSuite) admit(existing []model.Presensi, in Input) []model.Presensi {
	entri, err := s.svc.CreateEntry(in, existing)
	s.Require().NoError(err)
	return append(existing, entri)
}

func (s *ServiceSuite) TestEntriLengkapDanTernormalisasi() {
	entri, err := s.svc.CreateEntry(Input{
		Nama:      "  andi   Wijaya ",
		PesertaID: "diskominfo",
		Instansi:  "",
		NoHP:      "0812-3456-7890",
		NIP:       "19900228 1234 567890",
		Foto:      "data:image/jpeg;base64,AAAA",
	}, nil)
	s.Require().NoError(err)

	s.Equal("id-1", entri.ID)
	s.Equal("andi Wijaya", entri.Nama)
	s.Equal("diskominfo", entri.PesertaID)
	s.Equal("Dinas Komunikasi dan Informatika", entri.PesertaLabel)
	s.Nil(entri.Peran)
	// Instansi kosong jatuh ke label slot undangan.
	s.Equal("Dinas Komunikasi dan Informatika", entri.Instansi)
	s.Equal("6281234567890", entri.NoHP)
	s.Equal("199002281234567890", entri.NIP)
	s.Require().NotNil(entri.Foto)
	s.Equal("data:image/jpeg;base64,AAAA", *entri.Foto)
	s.Equal(SumberBukuTamu, entri.Sumber)
	s.Equal("2026-08-31", entri.Tanggal)
	s.Equal(s.svc.Now(), entri.CreatedAt)
}

func (s *ServiceSuite) TestIsianTidakValid() {
	cases := []struct {
		nama string
		in   Input
	}{
		{"nama asal ketik", s.input("asdfgh", "diskominfo", "199002281234567890")},
		{"nohp salah", Input{Nama: "Andi Wijaya", PesertaID: "diskominfo", NoHP: "12345", NIP: "199002281234567890"}},
		{"nip salah", Input{Nama: "Andi Wijaya", PesertaID: "diskominfo", NoHP: "081234567890", NIP: "199013011234567890"}},
	}
	for _, tc := range cases {
		s.Run(tc.nama, func() {
			_, err := s.svc.CreateEntry(tc.in, nil)
			s.Require().ErrorIs(err, ErrIsianTidakValid)
		})
	}
}

func (s *ServiceSuite) TestPesertaTidakTerdaftar() {
	_, err := s.svc.CreateEntry(s.input("Andi Wijaya", "", "199002281234567890"), nil)
	s.Require().ErrorIs(err, ErrPesertaTidakTerdaftar)

	_, err = s.svc.CreateEntry(s.input("Andi Wijaya", "dinas-siluman", "199002281234567890"), nil)
	s.Require().ErrorIs(err, ErrPesertaTidakTerdaftar)
}

func (s *ServiceSuite) TestKuotaTotal() {
	// Roster kecil: total 2 kursi, dua entri sudah masuk.
	svc := &Service{
		Roster: NewRoster([]Peserta{
			{ID: "a", Label: "Unit A", Kuota: 1},
			{ID: "b", Label: "Unit B", Kuota: 1},
		}),
		Now:   s.svc.Now,
		NewID: s.svc.NewID,
	}
	existing := []model.Presensi{}
	for i, id := range []string{"a", "b"} {
		entri, err := svc.CreateEntry(Input{
			Nama:      fmt.Sprintf("Peserta Nomor %s", []string{"Satu", "Dua"}[i]),
			PesertaID: id,
			NoHP:      "081234567890",
			NIP:       fmt.Sprintf("1990022812345678%02d", i+10),
		}, existing)
		s.Require().NoError(err)
		existing = append(existing, entri)
	}

	_, err := svc.CreateEntry(Input{
		Nama:      "Peserta Nomor Tiga",
		PesertaID: "a",
		NoHP:      "081234567890",
		NIP:       "199002281234567830",
	}, existing)
	s.Require().ErrorIs(err, ErrKuotaTotalPenuh)
}

func (s *ServiceSuite) TestNIPDuplikatLintasPeserta() {
	existing := s.admit(nil, s.input("Andi Wijaya", "diskominfo", "199002281234567890"))

	// NIP sama, slot undangan berbeda.
	_, err := s.svc.CreateEntry(s.input("Budi Santoso", "dinkes", "199002281234567890"), existing)
	s.Require().ErrorIs(err, ErrNIPSudahPresensi)
}

func (s *ServiceSuite) TestKuotaPerPeserta() {
	existing := s.admit(nil, s.input("Andi Wijaya", "dinkes", "199002281234567890"))

	_, err := s.svc.CreateEntry(s.input("Budi Santoso", "dinkes", "199002281234567891"), existing)
	s.Require().ErrorIs(err, ErrKuotaPesertaPenuh)
	s.Equal("Kuota Dinas Kesehatan sudah penuh (1/1)", err.Error())

	// Slot lain masih terbuka.
	_, err = s.svc.CreateEntry(s.input("Budi Santoso", "diskominfo", "199002281234567891"), existing)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestNamaDuplikatDalamPeserta() {
	existing := s.admit(nil, s.input("Andi Wijaya", "diskominfo", "199002281234567890"))

	// Nama sama meski ejaan beda (kapital, tanda hubung), NIP beda.
	_, err := s.svc.CreateEntry(s.input("ANDI WI-JAYA", "diskominfo", "199002281234567891"), existing)
	s.Require().ErrorIs(err, ErrNamaSudahPresensi)

	// Nama sama di slot berbeda tidak masalah.
	_, err = s.svc.CreateEntry(s.input("Andi Wijaya", "dinkes", "199002281234567891"), existing)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestPeranSatuKursi() {
	in := s.input("Andi Wijaya", "bappeda", "199002281234567890")

	// Tanpa peran ditolak karena bappeda mendefinisikan peran.
	_, err := s.svc.CreateEntry(in, nil)
	s.Require().ErrorIs(err, ErrPeranWajibDipilih)

	// Peran di luar daftar juga ditolak.
	in.Peran = "Bendahara"
	_, err = s.svc.CreateEntry(in, nil)
	s.Require().ErrorIs(err, ErrPeranWajibDipilih)

	in.Peran = "Kepala"
	existing := s.admit(nil, in)

	// Kursi Kepala sudah terisi walau kuota slot masih sisa.
	kedua := s.input("Budi Santoso", "bappeda", "199002281234567891")
	kedua.Peran = "Kepala"
	_, err = s.svc.CreateEntry(kedua, existing)
	s.Require().ErrorIs(err, ErrPeranSudahTerisi)

	kedua.Peran = "Operator"
	entri, err := s.svc.CreateEntry(kedua, existing)
	s.Require().NoError(err)
	s.Require().NotNil(entri.Peran)
	s.Equal("Operator", *entri.Peran)
	// Peran dari roster menempati kursi bernama di kolom ber-index unik.
	s.Require().NotNil(entri.PeranKursi)
	s.Equal("Operator", *entri.PeranKursi)
}

func (s *ServiceSuite) TestPeranBebasUntukSlotTanpaPeran() {
	in := s.input("Andi Wijaya", "diskominfo", "199002281234567890")
	in.Peran = "Pendamping"
	entri, err := s.svc.CreateEntry(in, nil)
	s.Require().NoError(err)
	s.Require().NotNil(entri.Peran)
	s.Equal("Pendamping", *entri.Peran)
	// Peran bebas tidak menempati kursi bernama.
	s.Nil(entri.PeranKursi)
}

// Dua orang di slot tanpa daftar peran boleh memakai peran bebas yang sama;
// kolom kursi ber-index unik harus tetap kosong agar insert kedua tidak
// ditolak database.
func (s *ServiceSuite) TestPeranBebasSamaTidakBentrok() {
	pertama := s.input("Andi Wijaya", "diskominfo", "199002281234567890")
	pertama.Peran = "Pendamping"
	existing := s.admit(nil, pertama)

	kedua := s.input("Budi Santoso", "diskominfo", "199002281234567891")
	kedua.Peran = "Pendamping"
	entri, err := s.svc.CreateEntry(kedua, existing)
	s.Require().NoError(err)

	s.Require().NotNil(entri.Peran)
	s.Equal("Pendamping", *entri.Peran)
	s.Nil(existing[0].PeranKursi)
	s.Nil(entri.PeranKursi)
}

func (s *ServiceSuite) TestEntriHariLainTidakDihitung() {
	kemarin := s.admit(nil, s.input("Andi Wijaya", "dinkes", "199002281234567890"))
	kemarin[0].Tanggal = "2026-08-30"

	// Kuota dinkes 1, tapi entri kemarin tidak menghalangi hari ini.
	_, err := s.svc.CreateEntry(s.input("Budi Santoso", "dinkes", "199002281234567891"), kemarin)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestEntriKanalLainTidakDihitung() {
	entri := s.admit(nil, s.input("Andi Wijaya", "dinkes", "199002281234567890"))
	entri[0].Sumber = "import-manual"

	_, err := s.svc.CreateEntry(s.input("Budi Santoso", "dinkes", "199002281234567891"), entri)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestRekapKuota() {
	existing := s.admit(nil, s.input("Andi Wijaya", "diskominfo", "199002281234567890"))
	kepala := s.input("Budi Santoso", "bappeda", "199002281234567891")
	kepala.Peran = "Kepala"
	existing = s.admit(existing, kepala)

	rekap := s.svc.RekapKuota(existing)
	s.Require().Len(rekap, 3)

	s.Equal("diskominfo", rekap[0].PesertaID)
	s.Equal(1, rekap[0].Terisi)
	s.Equal(1, rekap[0].Sisa)
	s.Nil(rekap[0].Peran)

	s.Equal("dinkes", rekap[1].PesertaID)
	s.Equal(0, rekap[1].Terisi)
	s.Equal(1, rekap[1].Sisa)

	s.Equal("bappeda", rekap[2].PesertaID)
	s.Equal(1, rekap[2].Terisi)
	s.Equal(1, rekap[2].Sisa)
	s.Equal(map[string]int{"Kepala": 1, "Operator": 0}, rekap[2].Peran)
}
