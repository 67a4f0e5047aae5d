package httpserver

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/transport"
)

// Validator wires go-playground/validator into echo's c.Validate so every
// request body is checked against its schema before touching the database.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, transport.Response{Success: false, Error: msg})
}

// failWithDetails exposes the underlying error text in the details field,
// matching the envelope the admin UI expects.
func failWithDetails(c echo.Context, status int, msg string, err error) error {
	return c.JSON(status, transport.Response{Success: false, Error: msg, Details: err.Error()})
}
