// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator.Validate instance for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a new CustomValidator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate validates the given struct against its `validate` tags.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
