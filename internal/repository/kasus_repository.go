package repository

import (
	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"

	"gorm.io/gorm"
)

type KasusRepository interface {
	Create(kasus *model.Kasus) error
	GetAll() ([]model.Kasus, error)
	GetByID(id uint) (*model.Kasus, error)
	GetByStatus(status string) ([]model.Kasus, error)
	GetByPetugas(petugasID uint) ([]model.Kasus, error)
	Update(kasus *model.Kasus) error
	CountByStatus(status string) (int64, error)
}

type kasusRepository struct {
	db *gorm.DB
}

func NewKasusRepository(db *gorm.DB) KasusRepository {
	return &kasusRepository{db}
}

func (r *kasusRepository) Create(kasus *model.Kasus) error {
	return r.db.Create(kasus).Error
}

func (r *kasusRepository) GetAll() ([]model.Kasus, error) {
	var list []model.Kasus
	err := r.db.Preload("Surat").Preload("Tamu").Preload("Petugas").
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *kasusRepository) GetByID(id uint) (*model.Kasus, error) {
	var kasus model.Kasus
	err := r.db.Preload("Surat").Preload("Tamu").Preload("Petugas").First(&kasus, id).Error
	if err != nil {
		return nil, err
	}
	return &kasus, nil
}

func (r *kasusRepository) GetByStatus(status string) ([]model.Kasus, error) {
	var list []model.Kasus
	err := r.db.Preload("Petugas").Where("status = ?", status).
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *kasusRepository) GetByPetugas(petugasID uint) ([]model.Kasus, error) {
	var list []model.Kasus
	err := r.db.Preload("Surat").Preload("Tamu").Where("petugas_id = ?", petugasID).
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *kasusRepository) Update(kasus *model.Kasus) error {
	return r.db.Save(kasus).Error
}

func (r *kasusRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Kasus{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
