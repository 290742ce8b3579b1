// Package gormstore implements the repositories on top of gorm (postgres or sqlite).
package gormstore

import (
	"errors"
	"fmt"

	"github.com/Gnanasekark/Online-property-listing/internal/model"
	"github.com/Gnanasekark/Online-property-listing/internal/repository"
	"gorm.io/gorm"
)

// Models lists every table owned by the service, in migration order
func Models() []interface{} {
	return []interface{}{&model.User{}, &model.Property{}, &model.Message{}}
}

// New returns the repositories backed by db
func New(db *gorm.DB) *repository.Store {
	return &repository.Store{
		Users:      &UserRepository{db: db},
		Properties: &PropertyRepository{db: db},
		Messages:   &MessageRepository{db: db},
	}
}

// translate maps gorm errors onto the repository sentinels
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, repository.ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
