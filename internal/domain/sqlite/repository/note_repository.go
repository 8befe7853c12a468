package repository

import (
	"errors"

	"cloudcache/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

func (d *DefaultNoteRepository) FindAllByNotebook(notebookID int64) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.Where("notebook_id = ?", notebookID).Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) FindByKeyAndNotebook(key string, notebookID int64) (*entity.Note, error) {
	var note entity.Note
	err := d.db.Where("key = ? AND notebook_id = ?", key, notebookID).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *DefaultNoteRepository) CountByNotebook(notebookID int64) (int64, error) {
	var count int64
	err := d.db.Model(&entity.Note{}).Where("notebook_id = ?", notebookID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts the note. Returns gorm.ErrDuplicatedKey if the notebook
// already holds a note with this key.
func (d *DefaultNoteRepository) Create(note *entity.Note) error {
	return d.db.Create(note).Error
}
