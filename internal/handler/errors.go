package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"yuancity-finance-portal/internal/model"
)

// detail is the single error envelope every endpoint returns; clients read
// the `detail` field verbatim.
func detail(status int, message string) *echo.HTTPError {
	return echo.NewHTTPError(status, map[string]string{"detail": message})
}

// httpError maps domain errors onto the portal's Spanish detail messages.
func httpError(err error) error {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return detail(http.StatusNotFound, "No encontrado.")
	case errors.Is(err, model.ErrInvalidStatus):
		return detail(http.StatusBadRequest, "Estado no válido")
	case errors.Is(err, model.ErrOrderTerminal):
		return detail(http.StatusBadRequest, "No se puede modificar un pedido que ya está cerrado")
	case errors.Is(err, model.ErrStatusRegression):
		return detail(http.StatusBadRequest, "No puedes retroceder el estado del pedido")
	case errors.Is(err, model.ErrInvalidTransition):
		return detail(http.StatusBadRequest, "Transición de estado no permitida")
	case errors.Is(err, model.ErrInvalidOTP):
		return detail(http.StatusBadRequest, "OTP inválido.")
	case errors.Is(err, model.ErrInvalidCredentials):
		return detail(http.StatusUnauthorized, "Credenciales inválidas.")
	case errors.Is(err, model.ErrForbidden):
		return detail(http.StatusForbidden, "No tienes permisos para realizar esta acción.")
	}
	return err
}
