package repository

import (
	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"

	"gorm.io/gorm"
)

type TamuRepository interface {
	Create(tamu *model.Tamu) error
	GetAll() ([]model.Tamu, error)
	GetByID(id uint) (*model.Tamu, error)
	GetByTanggal(tanggal string) ([]model.Tamu, error)
	CountByTanggal(tanggal string) (int64, error)
}

type tamuRepository struct {
	db *gorm.DB
}

func NewTamuRepository(db *gorm.DB) TamuRepository {
	return &tamuRepository{db}
}

func (r *tamuRepository) Create(tamu *model.Tamu) error {
	return r.db.Create(tamu).Error
}

func (r *tamuRepository) GetAll() ([]model.Tamu, error) {
	var list []model.Tamu
	err := r.db.Preload("Bidang").Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *tamuRepository) GetByID(id uint) (*model.Tamu, error) {
	var tamu model.Tamu
	err := r.db.Preload("Bidang").First(&tamu, id).Error
	if err != nil {
		return nil, err
	}
	return &tamu, nil
}

func (r *tamuRepository) GetByTanggal(tanggal string) ([]model.Tamu, error) {
	var list []model.Tamu
	err := r.db.Preload("Bidang").Where("tanggal = ?", tanggal).
		Order("created_at asc").Find(&list).Error
	return list, err
}

func (r *tamuRepository) CountByTanggal(tanggal string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Tamu{}).Where("tanggal = ?", tanggal).Count(&count).Error
	return count, err
}
