package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=owner buyer"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(signup{Name: "A", Email: "a@example.com", Password: "secret"}))

	err := v.Validate(signup{Email: "nope", Password: "123", Role: "admin"})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "name is required")
		assert.Contains(t, err.Error(), "email must be a valid email")
		assert.Contains(t, err.Error(), "password must be at least 6")
		assert.Contains(t, err.Error(), "role must be one of: owner buyer")
	}
}
