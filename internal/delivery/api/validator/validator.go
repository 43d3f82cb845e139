// Package validator adapts the shared struct validator to echo.
package validator

import (
	domainerrors "pushkit/internal/domain/errors"
	"pushkit/internal/util"
)

// EchoValidator implements echo.Validator
type EchoValidator struct{}

// New creates the echo validator
func New() *EchoValidator {
	return &EchoValidator{}
}

// Validate returns ErrValidationFailed naming every failing field
func (v *EchoValidator) Validate(i any) error {
	if err := util.ValidateStruct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
