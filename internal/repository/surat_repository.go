package repository

import (
	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"

	"gorm.io/gorm"
)

type SuratRepository interface {
	Create(surat *model.Surat) error
	GetAll() ([]model.Surat, error)
	GetByID(id uint) (*model.Surat, error)
	GetByNomorTracking(nomor string) (*model.Surat, error)
	GetByStatus(status string) ([]model.Surat, error)
	Update(surat *model.Surat) error
	CountByStatus(status string) (int64, error)
}

type suratRepository struct {
	db *gorm.DB
}

func NewSuratRepository(db *gorm.DB) SuratRepository {
	return &suratRepository{db}
}

func (r *suratRepository) Create(surat *model.Surat) error {
	return r.db.Create(surat).Error
}

func (r *suratRepository) GetAll() ([]model.Surat, error) {
	var list []model.Surat
	err := r.db.Preload("Bidang").Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *suratRepository) GetByID(id uint) (*model.Surat, error) {
	var surat model.Surat
	err := r.db.Preload("Bidang").First(&surat, id).Error
	if err != nil {
		return nil, err
	}
	return &surat, nil
}

func (r *suratRepository) GetByNomorTracking(nomor string) (*model.Surat, error) {
	var surat model.Surat
	err := r.db.Preload("Bidang").Where("nomor_tracking = ?", nomor).First(&surat).Error
	if err != nil {
		return nil, err
	}
	return &surat, nil
}

func (r *suratRepository) GetByStatus(status string) ([]model.Surat, error) {
	var list []model.Surat
	err := r.db.Preload("Bidang").Where("status = ?", status).
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *suratRepository) Update(surat *model.Surat) error {
	return r.db.Save(surat).Error
}

func (r *suratRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Surat{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
