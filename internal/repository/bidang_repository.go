package repository

import (
	"github.com/4rul23/Kominfo-PKL-sub000/internal/model"

	"gorm.io/gorm"
)

type BidangRepository interface {
	Create(bidang *model.Bidang) error
	GetAll() ([]model.Bidang, error)
	GetByID(id uint) (*model.Bidang, error)
}

type bidangRepository struct {
	db *gorm.DB
}

func NewBidangRepository(db *gorm.DB) BidangRepository {
	return &bidangRepository{db}
}

func (r *bidangRepository) Create(bidang *model.Bidang) error {
	return r.db.Create(bidang).Error
}

func (r *bidangRepository) GetAll() ([]model.Bidang, error) {
	var list []model.Bidang
	err := r.db.Order("nama_bidang asc").Find(&list).Error
	return list, err
}

func (r *bidangRepository) GetByID(id uint) (*model.Bidang, error) {
	var bidang model.Bidang
	err := r.db.First(&bidang, id).Error
	if err != nil {
		return nil, err
	}
	return &bidang, nil
}
