package dto

import "time"

// ---- requests ----

type FinanceLoginRequest struct {
	Email string `json:"email"`
}

type OTPRequest struct {
	Identifier string `json:"identifier"`
}

type OTPVerifyRequest struct {
	Identifier string `json:"identifier"`
	OTP        string `json:"otp"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type PayoutStatusUpdateRequest struct {
	Status         string     `json:"status"`
	Notes          *string    `json:"notes,omitempty"`
	AvailableOn    *time.Time `json:"available_on,omitempty"`
	BuyerConfirmed bool       `json:"buyer_confirmed,omitempty"`
}

type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

// ---- auth responses ----

type SessionUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type LoginResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    SessionUser `json:"user"`
}

type RefreshResponse struct {
	Access string `json:"access"`
}

type OTPRequestResponse struct {
	Detail    string `json:"detail"`
	IsNewUser bool   `json:"is_new_user"`
}

// ---- finance responses ----

type BankAccount struct {
	BankName          string `json:"bank_name"`
	AccountType       string `json:"account_type"`
	AccountNumber     string `json:"account_number"`
	AccountHolderName string `json:"account_holder_name"`
	DocumentType      string `json:"document_type"`
	DocumentNumber    string `json:"document_number"`
}

type FinanceOrderItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          string  `json:"price"`
	Count          int     `json:"count"`
	PlatformFee    string  `json:"platform_fee"`
	VendorEarnings string  `json:"vendor_earnings"`
	VendorID       *string `json:"vendor_id"`
	VendorEmail    *string `json:"vendor_email"`
	VendorName     *string `json:"vendor_name"`
}

type FinanceOrder struct {
	ID                  string             `json:"id"`
	TransactionID       string             `json:"transaction_id"`
	Status              string             `json:"status"`
	StatusLabel         string             `json:"status_label"`
	Amount              string             `json:"amount"`
	ShippingPrice       string             `json:"shipping_price"`
	DateIssued          time.Time          `json:"date_issued"`
	BuyerEmail          string             `json:"buyer_email"`
	BuyerName           string             `json:"buyer_name"`
	City                string             `json:"city"`
	StateProvinceRegion string             `json:"state_province_region"`
	CountryRegion       string             `json:"country_region"`
	TelephoneNumber     string             `json:"telephone_number"`
	Items               []FinanceOrderItem `json:"items"`
	TotalPlatformFee    string             `json:"total_platform_fee"`
	VendorTotal         string             `json:"vendor_total"`
}

type FinancePayout struct {
	ID                  string       `json:"id"`
	Status              string       `json:"status"`
	StatusLabel         string       `json:"status_label"`
	GrossAmount         string       `json:"gross_amount"`
	PlatformFee         string       `json:"platform_fee"`
	NetAmount           string       `json:"net_amount"`
	ItemsCount          int          `json:"items_count"`
	BuyerConfirmedAt    *time.Time   `json:"buyer_confirmed_at"`
	AvailableOn         *time.Time   `json:"available_on"`
	ReleasedAt          *time.Time   `json:"released_at"`
	Notes               string       `json:"notes"`
	VendorEmail         string       `json:"vendor_email"`
	VendorName          string       `json:"vendor_name"`
	VendorPhone         string       `json:"vendor_phone"`
	VendorID            *string      `json:"vendor_id"`
	OrderTransactionID  string       `json:"order_transaction_id"`
	BankAccount         *BankAccount `json:"bank_account"`
}

type DashboardStats struct {
	OrdersTotal         int64  `json:"orders_total"`
	OrdersPending       int64  `json:"orders_pending"`
	OrdersDelivered     int64  `json:"orders_delivered"`
	OrdersCancelled     int64  `json:"orders_cancelled"`
	PayoutsWaiting      int64  `json:"payouts_waiting"`
	PayoutsPending      int64  `json:"payouts_pending"`
	PayoutsAvailable    int64  `json:"payouts_available"`
	PayoutsReleased     int64  `json:"payouts_released"`
	PendingAmount       string `json:"pending_amount"`
	AvailableAmount     string `json:"available_amount"`
	SalesTotal          string `json:"sales_total"`
	AvgOrderValue       string `json:"avg_order_value"`
	ItemsSold           int64  `json:"items_sold"`
	UsersTotal          int64  `json:"users_total"`
	UsersActive         int64  `json:"users_active"`
	UsersVendors        int64  `json:"users_vendors"`
	UsersClients        int64  `json:"users_clients"`
	VendorsWithProducts int64  `json:"vendors_with_products"`
	VendorsWithSales    int64  `json:"vendors_with_sales"`
	ProductsTotal       int64  `json:"products_total"`
	ProductsAvailable   int64  `json:"products_available"`
	SupportUnread       int64  `json:"support_unread"`
	SupportThreads      int64  `json:"support_threads"`
}

type SalesPoint struct {
	Month   string  `json:"month"`
	Sales   float64 `json:"sales"`
	Clients int64   `json:"clients"`
}

type CategorySlice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type DashboardPayload struct {
	Stats             DashboardStats  `json:"stats"`
	SalesSeries       []SalesPoint    `json:"sales_series"`
	CategoryBreakdown []CategorySlice `json:"category_breakdown"`
	RecentOrders      []FinanceOrder  `json:"recent_orders"`
	RecentPayouts     []FinancePayout `json:"recent_payouts"`
}

// ---- admin responses ----

type AdminOrderRow struct {
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	DateIssued    string `json:"date_issued"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	OrderTotal    string `json:"order_total"`
	ItemsCount    int    `json:"items_count"`
}

type AdminOrderItem struct {
	OrderItemID string  `json:"order_item_id"`
	ProductID   *string `json:"product_id"`
	Name        string  `json:"name"`
	Price       string  `json:"price"`
	Count       int     `json:"count"`
}

type AdminOrderDetail struct {
	OrderID             string           `json:"order_id"`
	TransactionID       string           `json:"transaction_id"`
	Status              string           `json:"status"`
	DateIssued          time.Time        `json:"date_issued"`
	FullName            string           `json:"full_name"`
	CustomerEmail       string           `json:"customer_email"`
	TelephoneNumber     string           `json:"telephone_number"`
	AddressLine1        string           `json:"address_line_1"`
	AddressLine2        string           `json:"address_line_2"`
	City                string           `json:"city"`
	StateProvinceRegion string           `json:"state_province_region"`
	PostalZipCode       string           `json:"postal_zip_code"`
	CountryRegion       string           `json:"country_region"`
	Amount              string           `json:"amount"`
	Items               []AdminOrderItem `json:"items"`
}

type OrderStatusUpdateResponse struct {
	Success       string `json:"success"`
	Status        string `json:"status"`
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
}

type AdminReview struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Rating        float64   `json:"rating"`
	Comment       string    `json:"comment"`
	DateCreated   time.Time `json:"date_created"`
	UserName      string    `json:"user_name"`
	CustomerName  string    `json:"customer_name"`
	TransactionID *string   `json:"transaction_id"`
}

type AdminProduct struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Quantity    int       `json:"quantity"`
	IsAvailable bool      `json:"is_available"`
	VendorName  string    `json:"vendor_name"`
	VendorEmail string    `json:"vendor_email"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

type AdminVendor struct {
	UserID        string       `json:"user_id"`
	FullName      string       `json:"full_name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	ProductsCount int64        `json:"products_count"`
	BankAccount   *BankAccount `json:"bank_account"`
	CreatedAt     time.Time    `json:"created_at"`
}

type SupportThread struct {
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
	Messages      int64  `json:"messages"`
	Unread        int64  `json:"unread"`
	LastMessageAt string `json:"last_message_at"`
}
