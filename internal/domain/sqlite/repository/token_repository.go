package repository

import (
	"errors"

	"cloudcache/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultTokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *DefaultTokenRepository {
	return &DefaultTokenRepository{db: db}
}

func (d *DefaultTokenRepository) FindByToken(token string) (*entity.AccessToken, error) {
	var at entity.AccessToken
	err := d.db.Where("token = ?", token).First(&at).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &at, nil
}

func (d *DefaultTokenRepository) FindByUser(userID int64) (*entity.AccessToken, error) {
	var at entity.AccessToken
	err := d.db.Where("user_id = ?", userID).First(&at).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &at, nil
}

// Create inserts the token row. gorm.ErrDuplicatedKey means either the token
// value collided or another request already issued this user's token; the
// caller decides which by re-reading.
func (d *DefaultTokenRepository) Create(token *entity.AccessToken) error {
	return d.db.Create(token).Error
}
