package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"yuancity-finance-portal/internal/dto"
	"yuancity-finance-portal/internal/service"
)

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.adminService.ListOrders(ctx, parseLimit(c.QueryParam("limit")))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string][]dto.AdminOrderRow{"orders": orders})
}

func (h *AdminHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	// The admin views address orders by transaction id, not primary key.
	order, err := h.adminService.GetOrder(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]*dto.AdminOrderDetail{"order": order})
}

func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.OrderStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	resp, err := h.adminService.UpdateOrderStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.adminService.ListProducts(ctx, parseLimit(c.QueryParam("limit")))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string][]dto.AdminProduct{"results": products})
}

func (h *AdminHandler) ListReviews(c echo.Context) error {
	ctx := c.Request().Context()

	reviews, err := h.adminService.ListReviews(ctx, parseLimit(c.QueryParam("limit")))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string][]dto.AdminReview{"reviews": reviews})
}

func (h *AdminHandler) ListVendors(c echo.Context) error {
	ctx := c.Request().Context()

	vendors, err := h.adminService.ListVendors(ctx, parseLimit(c.QueryParam("limit")))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string][]dto.AdminVendor{"vendors": vendors})
}

func (h *AdminHandler) ListSupportThreads(c echo.Context) error {
	ctx := c.Request().Context()

	threads, err := h.adminService.ListSupportThreads(ctx, parseLimit(c.QueryParam("limit")))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string][]dto.SupportThread{"threads": threads})
}
