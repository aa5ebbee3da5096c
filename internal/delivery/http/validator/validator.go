// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"net/http"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates an Echo-compatible request validator.
func New() echo.Validator {
	return &echoValidator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags and maps failures to a 400 response.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
