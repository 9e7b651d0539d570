// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playgroundvalidator "github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for Echo
type CustomValidator struct {
	validator *playgroundvalidator.Validate
}

// New creates a CustomValidator with struct tag validation enabled
func New() *CustomValidator {
	return &CustomValidator{
		validator: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate validates the given struct against its `validate` tags
func (v *CustomValidator) Validate(i any) error {
	return v.validator.Struct(i)
}
