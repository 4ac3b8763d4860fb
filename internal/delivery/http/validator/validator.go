// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound inputs.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the echo request validator.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate runs the struct tags and maps failures to a 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
