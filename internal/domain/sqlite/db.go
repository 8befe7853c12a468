package sqlite

import (
	"time"

	"cloudcache/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Init opens the database at dsn and migrates the schema. TranslateError is
// on so unique-index violations surface as gorm.ErrDuplicatedKey; the
// indexes themselves are the authoritative guard against duplicate rows,
// application-level existence checks only pick the error message.
func Init(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&entity.User{}, &entity.Notebook{}, &entity.Note{}, &entity.AccessToken{})
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
