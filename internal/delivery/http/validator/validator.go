// Package validator adapts go-playground validation to Echo's Validator interface.
package validator

import (
	domainerrors "jobboard/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator wraps a single validator instance shared by all requests.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the Echo-facing validator.
func New() *CustomValidator {
	return &CustomValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks struct tags and maps failures onto the shared error taxonomy.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
