package repository

import (
	"gorm.io/gorm"

	"github.com/minaamulhaq/updatedPortfolowithbackend/entity"
)

type ContactRepository interface {
	Create(contact *entity.Contact) error
	// FindAll returns every submission, newest first. There is no
	// delete; the inbox is append-only.
	FindAll() ([]entity.Contact, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(contact *entity.Contact) error {
	return r.db.Create(contact).Error
}

func (r *contactRepository) FindAll() ([]entity.Contact, error) {
	var contacts []entity.Contact
	err := r.db.Order("created_at DESC").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}
