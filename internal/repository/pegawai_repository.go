package repository

import (
	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"

	"gorm.io/gorm"
)

type PegawaiRepository interface {
	Create(pegawai *model.Pegawai) error
	FindByNIP(nip string) (*model.Pegawai, error)
	FindByID(id uint) (*model.Pegawai, error)
	GetAll() ([]model.Pegawai, error)
	Update(pegawai *model.Pegawai) error
}

type pegawaiRepository struct {
	db *gorm.DB
}

func NewPegawaiRepository(db *gorm.DB) PegawaiRepository {
	return &pegawaiRepository{db}
}

func (r *pegawaiRepository) Create(pegawai *model.Pegawai) error {
	return r.db.Create(pegawai).Error
}

func (r *pegawaiRepository) FindByNIP(nip string) (*model.Pegawai, error) {
	var pegawai model.Pegawai
	err := r.db.Preload("Bidang").Where("nip = ?", nip).First(&pegawai).Error
	if err != nil {
		return nil, err
	}
	return &pegawai, nil
}

func (r *pegawaiRepository) FindByID(id uint) (*model.Pegawai, error) {
	var pegawai model.Pegawai
	err := r.db.Preload("Bidang").First(&pegawai, id).Error
	if err != nil {
		return nil, err
	}
	return &pegawai, nil
}

func (r *pegawaiRepository) GetAll() ([]model.Pegawai, error) {
	var list []model.Pegawai
	err := r.db.Preload("Bidang").Order("nama asc").Find(&list).Error
	return list, err
}

func (r *pegawaiRepository) Update(pegawai *model.Pegawai) error {
	return r.db.Save(pegawai).Error
}
