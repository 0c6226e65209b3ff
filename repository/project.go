package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minaamulhaq/updatedPortfolowithbackend/entity"
)

type ProjectRepository interface {
	Create(project *entity.Project) error
	// FindAll returns up to limit projects; limit <= 0 returns all.
	FindAll(limit int) ([]entity.Project, error)
	FindByID(id uuid.UUID) (*entity.Project, error)
	Save(project *entity.Project) error
	Delete(id uuid.UUID) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *entity.Project) error {
	return r.db.Create(project).Error
}

func (r *projectRepository) FindAll(limit int) ([]entity.Project, error) {
	var projects []entity.Project
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) FindByID(id uuid.UUID) (*entity.Project, error) {
	var project entity.Project
	err := r.db.Where("id = ?", id).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Save(project *entity.Project) error {
	return r.db.Save(project).Error
}

func (r *projectRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&entity.Project{}, "id = ?", id).Error
}
