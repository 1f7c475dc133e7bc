package dto

import (
	"github.com/shopspring/decimal"

	"yuancity-finance-portal/internal/model"
)

// Constructors mapping persisted models onto the wire shapes. Money fields
// travel as fixed two-decimal strings.

func NewFinanceOrderItem(item *model.OrderItem) FinanceOrderItem {
	out := FinanceOrderItem{
		ID:             item.ID,
		Name:           item.Name,
		Price:          item.Price.StringFixed(2),
		Count:          item.Count,
		PlatformFee:    item.PlatformFee.StringFixed(2),
		VendorEarnings: item.VendorEarnings.StringFixed(2),
	}
	if item.Product != nil && item.Product.Vendor != nil {
		vendor := item.Product.Vendor
		name := vendor.DisplayName()
		out.VendorID = &vendor.ID
		out.VendorEmail = &vendor.Email
		out.VendorName = &name
	}
	return out
}

func NewFinanceOrder(order *model.Order) FinanceOrder {
	items := make([]FinanceOrderItem, 0, len(order.Items))
	totalFee := decimal.Zero
	vendorTotal := decimal.Zero
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, NewFinanceOrderItem(item))
		totalFee = totalFee.Add(item.PlatformFee)
		vendorTotal = vendorTotal.Add(item.VendorEarnings)
	}

	buyerEmail := ""
	buyerName := ""
	if order.User != nil {
		buyerEmail = order.User.Email
		buyerName = order.User.FullName()
	}

	return FinanceOrder{
		ID:                  order.ID,
		TransactionID:       order.TransactionID,
		Status:              string(order.Status),
		StatusLabel:         order.Status.Label(),
		Amount:              order.Amount.StringFixed(2),
		ShippingPrice:       order.ShippingPrice.StringFixed(2),
		DateIssued:          order.DateIssued,
		BuyerEmail:          buyerEmail,
		BuyerName:           buyerName,
		City:                order.City,
		StateProvinceRegion: order.StateProvinceRegion,
		CountryRegion:       order.CountryRegion,
		TelephoneNumber:     order.TelephoneNumber,
		Items:               items,
		TotalPlatformFee:    totalFee.StringFixed(2),
		VendorTotal:         vendorTotal.StringFixed(2),
	}
}

func NewBankAccount(info *model.BankAccountInfo) *BankAccount {
	if info == nil {
		return nil
	}
	return &BankAccount{
		BankName:          info.BankName,
		AccountType:       info.AccountType,
		AccountNumber:     info.AccountNumber,
		AccountHolderName: info.AccountHolderName,
		DocumentType:      info.DocumentType,
		DocumentNumber:    info.DocumentNumber,
	}
}

func NewFinancePayout(payout *model.VendorPayout) FinancePayout {
	out := FinancePayout{
		ID:               payout.ID,
		Status:           string(payout.Status),
		StatusLabel:      payout.Status.Label(),
		GrossAmount:      payout.GrossAmount.StringFixed(2),
		PlatformFee:      payout.PlatformFee.StringFixed(2),
		NetAmount:        payout.NetAmount.StringFixed(2),
		ItemsCount:       payout.ItemsCount,
		BuyerConfirmedAt: payout.BuyerConfirmedAt,
		AvailableOn:      payout.AvailableOn,
		ReleasedAt:       payout.ReleasedAt,
		Notes:            payout.Notes,
	}

	if payout.Vendor != nil {
		vendor := payout.Vendor
		out.VendorEmail = vendor.Email
		out.VendorName = vendor.DisplayName()
		out.VendorPhone = vendor.Phone
		out.VendorID = &vendor.ID
	}
	if payout.Order != nil {
		out.OrderTransactionID = payout.Order.TransactionID
	}

	// Prefer the live account; fall back to the frozen snapshot.
	if payout.Vendor != nil && payout.Vendor.BankAccount != nil {
		out.BankAccount = NewBankAccount(model.BankAccountInfoFrom(payout.Vendor.BankAccount))
	} else if snapshot := payout.Snapshot(); snapshot != nil {
		out.BankAccount = NewBankAccount(snapshot)
	}

	return out
}

func NewAdminOrderRow(order *model.Order) AdminOrderRow {
	customerName := order.FullName
	customerEmail := ""
	if order.User != nil {
		if customerName == "" {
			customerName = order.User.FullName()
		}
		customerEmail = order.User.Email
	}
	return AdminOrderRow{
		OrderID:       order.ID,
		TransactionID: order.TransactionID,
		Status:        string(order.Status),
		DateIssued:    order.DateIssued.Format("2006-01-02T15:04:05Z07:00"),
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		OrderTotal:    order.Amount.StringFixed(2),
		ItemsCount:    len(order.Items),
	}
}

func NewAdminOrderDetail(order *model.Order) AdminOrderDetail {
	items := make([]AdminOrderItem, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		row := AdminOrderItem{
			OrderItemID: item.ID,
			Name:        item.Name,
			Price:       item.Price.StringFixed(2),
			Count:       item.Count,
		}
		if item.ProductID != "" {
			productID := item.ProductID
			row.ProductID = &productID
		}
		items = append(items, row)
	}

	customerName := order.FullName
	customerEmail := ""
	if order.User != nil {
		if customerName == "" {
			customerName = order.User.FullName()
		}
		customerEmail = order.User.Email
	}

	return AdminOrderDetail{
		OrderID:             order.ID,
		TransactionID:       order.TransactionID,
		Status:              string(order.Status),
		DateIssued:          order.DateIssued,
		FullName:            customerName,
		CustomerEmail:       customerEmail,
		TelephoneNumber:     order.TelephoneNumber,
		AddressLine1:        order.AddressLine1,
		AddressLine2:        order.AddressLine2,
		City:                order.City,
		StateProvinceRegion: order.StateProvinceRegion,
		PostalZipCode:       order.PostalZipCode,
		CountryRegion:       order.CountryRegion,
		Amount:              order.Amount.StringFixed(2),
		Items:               items,
	}
}

func NewAdminReview(review *model.Review) AdminReview {
	out := AdminReview{
		ID:          review.ID,
		ProductID:   review.ProductID,
		Rating:      review.Rating,
		Comment:     review.Comment,
		DateCreated: review.DateCreated,
	}
	if review.Product != nil {
		out.ProductName = review.Product.Name
	}
	if review.User != nil {
		name := review.User.DisplayName()
		out.UserName = name
		out.CustomerName = name
	}
	if review.OrderItem != nil && review.OrderItem.Order != nil {
		transactionID := review.OrderItem.Order.TransactionID
		out.TransactionID = &transactionID
	}
	return out
}

func NewAdminProduct(product *model.Product) AdminProduct {
	out := AdminProduct{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price.StringFixed(2),
		Quantity:    product.Quantity,
		IsAvailable: product.IsAvailable,
		CreatedAt:   product.CreatedAt,
	}
	if product.Vendor != nil {
		out.VendorName = product.Vendor.DisplayName()
		out.VendorEmail = product.Vendor.Email
	}
	if product.Category != nil {
		out.Category = product.Category.Name
	}
	return out
}

func NewAdminVendor(user *model.User, productsCount int64) AdminVendor {
	out := AdminVendor{
		UserID:        user.ID,
		FullName:      user.FullName(),
		Email:         user.Email,
		Phone:         user.Phone,
		ProductsCount: productsCount,
		CreatedAt:     user.CreatedAt,
	}
	if user.BankAccount != nil {
		out.BankAccount = NewBankAccount(model.BankAccountInfoFrom(user.BankAccount))
	}
	return out
}
