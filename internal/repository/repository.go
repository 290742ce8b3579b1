// Package repository defines the persistence contracts shared by the relational
// and document store backends.
package repository

import (
	"context"
	"errors"

	"github.com/Gnanasekark/Online-property-listing/internal/model"
)

var (
	// ErrNotFound is returned when no record matches
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint is violated
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository persists accounts
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.User, error)
}

// PropertyRepository persists listings
type PropertyRepository interface {
	Create(ctx context.Context, property *model.Property) error
	FindByID(ctx context.Context, id string) (*model.Property, error)
	// Find evaluates the text search and type match, newest first
	Find(ctx context.Context, query model.PropertyQuery) ([]model.Property, error)
	FindByOwner(ctx context.Context, ownerID string) ([]model.Property, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	Update(ctx context.Context, property *model.Property) error
	Delete(ctx context.Context, id string) error
}

// MessageRepository persists enquiries. Messages are never deleted.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	FindByID(ctx context.Context, id string) (*model.Message, error)
	// FindByOwner lists the owner's enquiries newest first; an empty status means any
	FindByOwner(ctx context.Context, ownerID, status string) ([]model.Message, error)
	CountByOwner(ctx context.Context, ownerID, status string) (int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// Store groups the repositories of one backend
type Store struct {
	Users      UserRepository
	Properties PropertyRepository
	Messages   MessageRepository
}
