// Package portal is the Go client for the finance/admin portal API: an
// authenticated HTTP client with a uniform result contract, a durable
// session store, the order/payout status vocabularies, and the
// transition-then-refetch workflow the dashboard is built on.
package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMalformedResponse marks a payload that decoded but misses required
// fields; callers treat it as a server bug, not user error.
var ErrMalformedResponse = errors.New("malformed response")

type SessionUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// Session is the stored access/refresh token pair plus the authenticated
// user's identity.
type Session struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    SessionUser `json:"user"`
}

type BankAccount struct {
	BankName          string `json:"bank_name"`
	AccountType       string `json:"account_type"`
	AccountNumber     string `json:"account_number"`
	AccountHolderName string `json:"account_holder_name"`
	DocumentType      string `json:"document_type"`
	DocumentNumber    string `json:"document_number"`
}

type OrderItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          string  `json:"price"`
	Count          int     `json:"count"`
	VendorName     *string `json:"vendor_name"`
	VendorEmail    *string `json:"vendor_email"`
	VendorEarnings string  `json:"vendor_earnings"`
}

type Order struct {
	ID                  string      `json:"id"`
	TransactionID       string      `json:"transaction_id"`
	Status              string      `json:"status"`
	StatusLabel         string      `json:"status_label"`
	Amount              string      `json:"amount"`
	BuyerEmail          string      `json:"buyer_email"`
	BuyerName           string      `json:"buyer_name"`
	DateIssued          time.Time   `json:"date_issued"`
	City                string      `json:"city"`
	StateProvinceRegion string      `json:"state_province_region"`
	CountryRegion       string      `json:"country_region"`
	TelephoneNumber     string      `json:"telephone_number"`
	Items               []OrderItem `json:"items"`
	TotalPlatformFee    string      `json:"total_platform_fee"`
	VendorTotal         string      `json:"vendor_total"`
}

type Payout struct {
	ID                 string       `json:"id"`
	Status             string       `json:"status"`
	StatusLabel        string       `json:"status_label"`
	NetAmount          string       `json:"net_amount"`
	GrossAmount        string       `json:"gross_amount"`
	PlatformFee        string       `json:"platform_fee"`
	OrderTransactionID string       `json:"order_transaction_id"`
	VendorEmail        string       `json:"vendor_email"`
	VendorName         string       `json:"vendor_name"`
	VendorPhone        string       `json:"vendor_phone"`
	BankAccount        *BankAccount `json:"bank_account"`
	BuyerConfirmedAt   *time.Time   `json:"buyer_confirmed_at"`
	AvailableOn        *time.Time   `json:"available_on"`
	ReleasedAt         *time.Time   `json:"released_at"`
	Notes              *string      `json:"notes"`
}

type Stats struct {
	OrdersTotal      int64  `json:"orders_total"`
	OrdersPending    int64  `json:"orders_pending"`
	PayoutsWaiting   int64  `json:"payouts_waiting"`
	PayoutsPending   int64  `json:"payouts_pending"`
	PayoutsAvailable int64  `json:"payouts_available"`
	PayoutsReleased  int64  `json:"payouts_released"`
	PendingAmount    string `json:"pending_amount"`
	AvailableAmount  string `json:"available_amount"`
}

type Summary struct {
	Stats         Stats    `json:"stats"`
	RecentOrders  []Order  `json:"recent_orders"`
	RecentPayouts []Payout `json:"recent_payouts"`
}

// decodeInto validates the boundary: raw JSON either decodes into the typed
// shape or the whole response is rejected as malformed.
func decodeInto(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return ErrMalformedResponse
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
