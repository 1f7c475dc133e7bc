package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"yuancity-finance-portal/internal/dto"
	"yuancity-finance-portal/internal/service"
)

type FinanceHandler struct {
	financeService service.FinanceService
}

func NewFinanceHandler(financeService service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// parseStatuses splits a comma-separated status filter; absent means all.
func parseStatuses(raw string) []string {
	if raw == "" {
		return nil
	}
	var statuses []string
	for _, value := range strings.Split(raw, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			statuses = append(statuses, value)
		}
	}
	return statuses
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}

func (h *FinanceHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	payload, err := h.financeService.DashboardSummary(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, payload)
}

func (h *FinanceHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.financeService.ListOrders(
		ctx,
		parseStatuses(c.QueryParam("status")),
		strings.TrimSpace(c.QueryParam("search")),
		parseLimit(c.QueryParam("limit")),
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string][]dto.FinanceOrder{"orders": orders})
}

func (h *FinanceHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.financeService.GetOrder(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]*dto.FinanceOrder{"order": order})
}

func (h *FinanceHandler) ListPayouts(c echo.Context) error {
	ctx := c.Request().Context()

	payouts, err := h.financeService.ListPayouts(
		ctx,
		parseStatuses(c.QueryParam("status")),
		strings.TrimSpace(c.QueryParam("search")),
		parseLimit(c.QueryParam("limit")),
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string][]dto.FinancePayout{"payouts": payouts})
}

func (h *FinanceHandler) UpdatePayoutStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PayoutStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	payout, err := h.financeService.UpdatePayoutStatus(ctx, c.Param("id"), &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]*dto.FinancePayout{"payout": payout})
}
