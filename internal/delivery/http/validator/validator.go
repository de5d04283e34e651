// Package validator wraps go-playground/validator as the echo Validator.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts validator.Validate to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with struct-tag validation enabled.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks struct tags and converts failures into a 400 HTTPError.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
