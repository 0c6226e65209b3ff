package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minaamulhaq/updatedPortfolowithbackend/entity"
)

type CVRepository interface {
	Create(cv *entity.CV) error
	FindByID(id uuid.UUID) (*entity.CV, error)
	// FindLatest returns the most recently created CV.
	FindLatest() (*entity.CV, error)
	// FindAll returns every CV, newest first.
	FindAll() ([]entity.CV, error)
	Delete(id uuid.UUID) error
}

type cvRepository struct {
	db *gorm.DB
}

func NewCVRepository(db *gorm.DB) CVRepository {
	return &cvRepository{db: db}
}

func (r *cvRepository) Create(cv *entity.CV) error {
	return r.db.Create(cv).Error
}

func (r *cvRepository) FindByID(id uuid.UUID) (*entity.CV, error) {
	var cv entity.CV
	err := r.db.Where("id = ?", id).First(&cv).Error
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *cvRepository) FindLatest() (*entity.CV, error) {
	var cv entity.CV
	err := r.db.Order("created_at DESC").First(&cv).Error
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *cvRepository) FindAll() ([]entity.CV, error) {
	var cvs []entity.CV
	err := r.db.Order("created_at DESC").Find(&cvs).Error
	if err != nil {
		return nil, err
	}
	return cvs, nil
}

func (r *cvRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&entity.CV{}, "id = ?", id).Error
}
