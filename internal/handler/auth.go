package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"yuancity-finance-portal/internal/dto"
	"yuancity-finance-portal/internal/model"
	"yuancity-finance-portal/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) FinanceLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.FinanceLoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	resp, err := h.authService.FinanceLogin(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			return detail(http.StatusBadRequest, "Correo no autorizado.")
		}
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) RequestOTP(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.OTPRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	resp, err := h.authService.RequestOTP(ctx, req.Identifier)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	resp, err := h.authService.VerifyOTP(ctx, req.Identifier, req.OTP)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	access, err := h.authService.Refresh(ctx, req.Refresh)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.RefreshResponse{Access: access})
}
