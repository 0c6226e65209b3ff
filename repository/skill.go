package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minaamulhaq/updatedPortfolowithbackend/entity"
)

type SkillRepository interface {
	Create(skill *entity.Skill) error
	FindAll() ([]entity.Skill, error)
	FindByID(id uuid.UUID) (*entity.Skill, error)
	Save(skill *entity.Skill) error
}

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(skill *entity.Skill) error {
	return r.db.Create(skill).Error
}

func (r *skillRepository) FindAll() ([]entity.Skill, error) {
	var skills []entity.Skill
	err := r.db.Order("created_at ASC").Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *skillRepository) FindByID(id uuid.UUID) (*entity.Skill, error) {
	var skill entity.Skill
	err := r.db.Where("id = ?", id).First(&skill).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) Save(skill *entity.Skill) error {
	return r.db.Save(skill).Error
}
