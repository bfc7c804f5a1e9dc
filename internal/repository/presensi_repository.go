package repository

import (
	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"

	"gorm.io/gorm"
)

type PresensiRepository interface {
	Create(p *model.Presensi) error
	GetAll() ([]model.Presensi, error)
	GetByTanggalSumber(tanggal, sumber string) ([]model.Presensi, error)
	CountByTanggalSumber(tanggal, sumber string) (int64, error)
	DeleteByTanggalSumber(tanggal, sumber string) (int64, error)
}

type presensiRepository struct {
	db *gorm.DB
}

func NewPresensiRepository(db *gorm.DB) PresensiRepository {
	return &presensiRepository{db}
}

func (r *presensiRepository) Create(p *model.Presensi) error {
	return r.db.Create(p).Error
}

func (r *presensiRepository) GetAll() ([]model.Presensi, error) {
	var list []model.Presensi
	err := r.db.Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *presensiRepository) GetByTanggalSumber(tanggal, sumber string) ([]model.Presensi, error) {
	var list []model.Presensi
	err := r.db.Where("tanggal = ? AND sumber = ?", tanggal, sumber).
		Order("created_at asc").Find(&list).Error
	return list, err
}

func (r *presensiRepository) CountByTanggalSumber(tanggal, sumber string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Presensi{}).
		Where("tanggal = ? AND sumber = ?", tanggal, sumber).Count(&count).Error
	return count, err
}

// DeleteByTanggalSumber adalah operasi admin untuk mengosongkan satu hari
// (misal setelah rapat selesai). Mengembalikan jumlah baris terhapus.
func (r *presensiRepository) DeleteByTanggalSumber(tanggal, sumber string) (int64, error) {
	res := r.db.Where("tanggal = ? AND sumber = ?", tanggal, sumber).Delete(&model.Presensi{})
	return res.RowsAffected, res.Error
}
