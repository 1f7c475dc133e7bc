package portal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const (
	loginPath     = "/api/payment/finance/login/"
	dashboardPath = "/api/payment/finance/dashboard/"
	ordersPath    = "/api/payment/finance/orders/"
	payoutsPath   = "/api/payment/finance/payouts/"
)

// Portal drives the finance dashboard workflow: login, filtered listings,
// the summary, and payout status transitions with their re-fetches. All
// methods are safe for concurrent use.
type Portal struct {
	client *Client

	mu       sync.Mutex
	summary  *Summary
	orders   []Order
	payouts  []Payout
	banner   *Banner
	inflight map[string]bool

	now func() time.Time
}

func NewPortal(client *Client) *Portal {
	return &Portal{
		client:   client,
		inflight: make(map[string]bool),
		now:      time.Now,
	}
}

// Restore brings back a persisted session; ErrNoSession means the caller
// must show the login screen.
func (p *Portal) Restore() error {
	return p.client.RestoreSession()
}

func (p *Portal) Login(ctx context.Context, email string) (*Session, error) {
	result, err := p.client.DoJSON(ctx, http.MethodPost, loginPath, map[string]string{"email": email})
	if err != nil {
		return nil, err
	}
	if !result.OK {
		if result.Detail == "" {
			return nil, errors.New("Correo no autorizado.")
		}
		return nil, errors.New(result.Detail)
	}

	var session Session
	if err := decodeInto(result.Data, &session); err != nil {
		return nil, err
	}
	if session.Access == "" || session.User.Email == "" {
		return nil, ErrMalformedResponse
	}
	if err := p.client.SetSession(&session); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return &session, nil
}

// Logout clears the session and resets every cached view.
func (p *Portal) Logout() error {
	p.mu.Lock()
	p.summary = nil
	p.orders = nil
	p.payouts = nil
	p.banner = nil
	p.inflight = make(map[string]bool)
	p.mu.Unlock()
	return p.client.ClearSession()
}

// listPath appends the status filter unless the sentinel "all" is chosen,
// in which case the parameter is omitted entirely.
func listPath(base, filter string) string {
	if filter == "" || filter == FilterAll {
		return base
	}
	query := url.Values{}
	query.Set("status", filter)
	return base + "?" + query.Encode()
}

func (p *Portal) FetchSummary(ctx context.Context) (*Summary, error) {
	result, err := p.client.DoJSON(ctx, http.MethodGet, dashboardPath, nil)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return nil, errors.New(result.Detail)
	}

	var summary Summary
	if err := decodeInto(result.Data, &summary); err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.summary = &summary
	p.mu.Unlock()
	return &summary, nil
}

func (p *Portal) FetchOrders(ctx context.Context, filter string) ([]Order, error) {
	result, err := p.client.DoJSON(ctx, http.MethodGet, listPath(ordersPath, filter), nil)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return nil, errors.New(result.Detail)
	}

	var payload struct {
		Orders []Order `json:"orders"`
	}
	if err := decodeInto(result.Data, &payload); err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.orders = payload.Orders
	p.mu.Unlock()
	return payload.Orders, nil
}

func (p *Portal) FetchPayouts(ctx context.Context, filter string) ([]Payout, error) {
	result, err := p.client.DoJSON(ctx, http.MethodGet, listPath(payoutsPath, filter), nil)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return nil, errors.New(result.Detail)
	}

	var payload struct {
		Payouts []Payout `json:"payouts"`
	}
	if err := decodeInto(result.Data, &payload); err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.payouts = payload.Payouts
	p.mu.Unlock()
	return payload.Payouts, nil
}

// ApplyPayoutTransition sends the status mutation and, on success,
// re-fetches the payout list and the summary concurrently. On failure the
// cached list is left untouched and an error banner carries the server's
// detail verbatim. No retry is attempted either way.
func (p *Portal) ApplyPayoutTransition(ctx context.Context, payoutID, target, filter string) error {
	p.mu.Lock()
	if p.inflight[payoutID] {
		p.mu.Unlock()
		return fmt.Errorf("transition already in flight for %s", payoutID)
	}
	p.inflight[payoutID] = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		delete(p.inflight, payoutID)
		p.mu.Unlock()
	}()

	path := fmt.Sprintf("%s%s/status/", payoutsPath, payoutID)
	result, err := p.client.DoJSON(ctx, http.MethodPatch, path, map[string]string{"status": target})
	if err != nil {
		p.setBanner(BannerError, "No pudimos completar la solicitud.")
		return err
	}
	if !result.OK {
		p.setBanner(BannerError, result.Detail)
		return errors.New(result.Detail)
	}

	// The mutation is durable; the two dependent views refresh in parallel
	// and neither failure rolls anything back.
	var wg sync.WaitGroup
	var listErr, summaryErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, listErr = p.FetchPayouts(ctx, filter)
	}()
	go func() {
		defer wg.Done()
		_, summaryErr = p.FetchSummary(ctx)
	}()
	wg.Wait()

	if listErr != nil {
		return listErr
	}
	if summaryErr != nil {
		return summaryErr
	}

	p.setBanner(BannerSuccess, "Estado actualizado correctamente")
	return nil
}

// InFlight reports whether a transition for the given payout is running,
// so each row can disable only its own action.
func (p *Portal) InFlight(payoutID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inflight[payoutID]
}

// Banner returns the current banner, or nil once it has expired.
func (p *Portal) Banner() *Banner {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.banner.Expired(p.now()) {
		p.banner = nil
	}
	return p.banner
}

func (p *Portal) setBanner(kind BannerKind, message string) {
	p.mu.Lock()
	p.banner = NewBanner(kind, message, p.now())
	p.mu.Unlock()
}

// Payouts returns the last fetched payout list.
func (p *Portal) Payouts() []Payout {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.payouts
}

// Orders returns the last fetched order list.
func (p *Portal) Orders() []Order {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.orders
}

// Summary returns the last fetched dashboard summary.
func (p *Portal) Summary() *Summary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.summary
}
