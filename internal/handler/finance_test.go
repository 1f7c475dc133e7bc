package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"yuancity-finance-portal/internal/dto"
	"yuancity-finance-portal/internal/model"
)

type stubFinanceService struct {
	statuses  []string
	search    string
	limit     int
	payouts   []dto.FinancePayout
	orders    []dto.FinanceOrder
	updateID  string
	updateReq *dto.PayoutStatusUpdateRequest
	updateOut *dto.FinancePayout
	err       error
}

func (s *stubFinanceService) DashboardSummary(ctx context.Context) (*dto.DashboardPayload, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.DashboardPayload{}, nil
}

func (s *stubFinanceService) ListOrders(ctx context.Context, statuses []string, search string, limit int) ([]dto.FinanceOrder, error) {
	s.statuses, s.search, s.limit = statuses, search, limit
	return s.orders, s.err
}

func (s *stubFinanceService) GetOrder(ctx context.Context, id string) (*dto.FinanceOrder, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.FinanceOrder{ID: id}, nil
}

func (s *stubFinanceService) ListPayouts(ctx context.Context, statuses []string, search string, limit int) ([]dto.FinancePayout, error) {
	s.statuses, s.search, s.limit = statuses, search, limit
	return s.payouts, s.err
}

func (s *stubFinanceService) UpdatePayoutStatus(ctx context.Context, id string, req *dto.PayoutStatusUpdateRequest) (*dto.FinancePayout, error) {
	s.updateID, s.updateReq = id, req
	return s.updateOut, s.err
}

func newFinanceContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListPayoutsParsesQuery(t *testing.T) {
	stub := &stubFinanceService{payouts: []dto.FinancePayout{{ID: "p1"}}}
	h := NewFinanceHandler(stub)

	c, rec := newFinanceContext(http.MethodGet, "/api/payment/finance/payouts/?status=available,released&search=tienda&limit=40", "")
	if err := h.ListPayouts(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if len(stub.statuses) != 2 || stub.statuses[0] != "available" || stub.statuses[1] != "released" {
		t.Errorf("statuses = %v", stub.statuses)
	}
	if stub.search != "tienda" || stub.limit != 40 {
		t.Errorf("search/limit = %q/%d", stub.search, stub.limit)
	}

	var body struct {
		Payouts []dto.FinancePayout `json:"payouts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Payouts) != 1 || body.Payouts[0].ID != "p1" {
		t.Errorf("payouts envelope = %+v", body)
	}
}

func TestListPayoutsNoFilterMeansAll(t *testing.T) {
	stub := &stubFinanceService{}
	h := NewFinanceHandler(stub)

	c, _ := newFinanceContext(http.MethodGet, "/api/payment/finance/payouts/", "")
	if err := h.ListPayouts(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if stub.statuses != nil {
		t.Errorf("statuses = %v, want nil for absent filter", stub.statuses)
	}
	if stub.limit != 0 {
		t.Errorf("limit = %d, want 0 for absent param", stub.limit)
	}
}

func TestParseStatuses(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"available", []string{"available"}},
		{"available,released", []string{"available", "released"}},
		{" available , released ", []string{"available", "released"}},
		{",,", nil},
	}
	for _, tc := range cases {
		got := parseStatuses(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("parseStatuses(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("parseStatuses(%q)[%d] = %q, want %q", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}

func TestUpdatePayoutStatusBindsAndForwards(t *testing.T) {
	stub := &stubFinanceService{updateOut: &dto.FinancePayout{ID: "p1", Status: "released"}}
	h := NewFinanceHandler(stub)

	c, rec := newFinanceContext(http.MethodPatch, "/api/payment/finance/payouts/p1/status/",
		`{"status":"released","notes":"transferido por PSE"}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.UpdatePayoutStatus(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if stub.updateID != "p1" {
		t.Errorf("id = %q, want p1", stub.updateID)
	}
	if stub.updateReq.Status != "released" || stub.updateReq.Notes == nil || *stub.updateReq.Notes != "transferido por PSE" {
		t.Errorf("request = %+v", stub.updateReq)
	}

	var body struct {
		Payout dto.FinancePayout `json:"payout"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Payout.Status != "released" {
		t.Errorf("payout envelope = %+v", body)
	}
}

func TestHTTPErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		detail string
	}{
		{model.ErrNotFound, http.StatusNotFound, "No encontrado."},
		{model.ErrInvalidStatus, http.StatusBadRequest, "Estado no válido"},
		{model.ErrStatusRegression, http.StatusBadRequest, "No puedes retroceder el estado del pedido"},
		{model.ErrOrderTerminal, http.StatusBadRequest, "No se puede modificar un pedido que ya está cerrado"},
		{model.ErrInvalidTransition, http.StatusBadRequest, "Transición de estado no permitida"},
		{model.ErrInvalidOTP, http.StatusBadRequest, "OTP inválido."},
		{model.ErrInvalidCredentials, http.StatusUnauthorized, "Credenciales inválidas."},
	}

	for _, tc := range cases {
		httpErr, ok := httpError(tc.err).(*echo.HTTPError)
		if !ok {
			t.Errorf("httpError(%v) is not an HTTPError", tc.err)
			continue
		}
		if httpErr.Code != tc.status {
			t.Errorf("httpError(%v).Code = %d, want %d", tc.err, httpErr.Code, tc.status)
		}
		message, ok := httpErr.Message.(map[string]string)
		if !ok || message["detail"] != tc.detail {
			t.Errorf("httpError(%v).Message = %v, want detail %q", tc.err, httpErr.Message, tc.detail)
		}
	}

	// Unmapped errors pass through untouched and become a plain 500.
	plain := errors.New("boom")
	if got := httpError(plain); got != plain {
		t.Errorf("httpError(plain) = %v, want passthrough", got)
	}
}

func TestUpdatePayoutStatusErrorEnvelope(t *testing.T) {
	stub := &stubFinanceService{err: model.ErrInvalidTransition}
	h := NewFinanceHandler(stub)

	c, _ := newFinanceContext(http.MethodPatch, "/api/payment/finance/payouts/p1/status/", `{"status":"released"}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	err := h.UpdatePayoutStatus(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("err = %v, want HTTPError", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", httpErr.Code)
	}
}
