// Package validator binds go-playground validation into echo.
package validator

import (
	"errors"

	domainerrors "cityportal/internal/domain/errors"

	validatorLib "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validatorLib.Validate
}

// New builds the request validator used by the HTTP server.
func New() *echoValidator {
	return &echoValidator{validate: validatorLib.New()}
}

// Validate implements echo.Validator. Struct tag violations surface as 400
// responses naming the first failing field.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validatorLib.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]

		return domainerrors.NewValidationError(
			"field " + first.Field() + " failed validation on tag " + first.Tag())
	}

	return domainerrors.NewValidationError(err.Error())
}
