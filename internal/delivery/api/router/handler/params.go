package handler

import (
	"strconv"

	"dncommerce/internal/delivery/api/response"
	"dncommerce/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
)

// pathID parses a positive integer path parameter. On failure the 400 response
// is already written and ok is false.
func pathID(c echo.Context, name string) (id int64, ok bool, err error) {
	raw := c.Param(name)
	id, parseErr := strconv.ParseInt(raw, 10, 64)
	if parseErr != nil || id <= 0 {
		return 0, false, response.BadRequestWithDetails(c, "INVALID_ID", "ID deve ser um número inteiro positivo",
			map[string]string{"param": name, "received": raw})
	}

	return id, true, nil
}

// bindAndValidate binds the request body into req and validates it. On failure the
// 400 response is already written and ok is false.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Corpo da requisição inválido")
	}

	if err := c.Validate(req); err != nil {
		if fields := validator.FormatValidationError(err); fields != nil {
			return false, response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Dados inválidos", fields)
		}

		return false, response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return true, nil
}
