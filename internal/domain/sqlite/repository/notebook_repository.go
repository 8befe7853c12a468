package repository

import (
	"errors"

	"cloudcache/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultNotebookRepository struct {
	db *gorm.DB
}

func NewNotebookRepository(db *gorm.DB) *DefaultNotebookRepository {
	return &DefaultNotebookRepository{db: db}
}

func (d *DefaultNotebookRepository) FindAllByUser(userID int64) ([]*entity.Notebook, error) {
	var notebooks []*entity.Notebook
	err := d.db.Where("user_id = ?", userID).Find(&notebooks).Error
	if err != nil {
		return nil, err
	}
	return notebooks, nil
}

// FindByNameAndUser is the ownership-scoped lookup: a notebook belonging to
// another user is indistinguishable from one that does not exist.
func (d *DefaultNotebookRepository) FindByNameAndUser(name string, userID int64) (*entity.Notebook, error) {
	var notebook entity.Notebook
	err := d.db.Where("name = ? AND user_id = ?", name, userID).First(&notebook).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &notebook, nil
}

// Create inserts the notebook. Returns gorm.ErrDuplicatedKey if the user
// already has a notebook with this name.
func (d *DefaultNotebookRepository) Create(notebook *entity.Notebook) error {
	return d.db.Create(notebook).Error
}
