package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles
const (
	RoleOwner = "owner"
	RoleBuyer = "buyer"
)

// User is an account that either lists properties (owner) or browses them (buyer).
// Role is fixed at signup.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null" bson:"name"`
	Email     string    `json:"email" gorm:"type:varchar(100);uniqueIndex;not null" bson:"email"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null" bson:"password"`
	Role      string    `json:"role" gorm:"type:varchar(20);not null;default:'buyer'" bson:"role"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// BeforeCreate assigns an ID when the caller did not
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}

// IsOwner reports whether the user may publish listings
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// ValidRole reports whether role is one of the known roles
func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleBuyer
}

// NewID returns a new opaque record identifier
func NewID() string {
	return uuid.NewString()
}
