package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/futureproof/careerguide/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Failures come back as *domain.ValidationError so the error handler can
// list every offending field.
func NewValidator() *echoValidator {
	return &echoValidator{v: domain.NewValidator()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		return domain.ValidationErrorFrom(err)
	}
	return nil
}
