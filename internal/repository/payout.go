package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"yuancity-finance-portal/internal/model"
)

type PayoutFilter struct {
	Statuses []model.PayoutStatus
	Search   string
	Limit    int
}

// PayoutStatusSummary carries the per-status count and net amount sum used
// by the dashboard.
type PayoutStatusSummary struct {
	Count  int64
	Amount decimal.Decimal
}

type PayoutRepository interface {
	List(ctx context.Context, filter PayoutFilter) ([]*model.VendorPayout, error)
	FindByID(ctx context.Context, id string) (*model.VendorPayout, error)
	Save(ctx context.Context, payout *model.VendorPayout) error
	SummaryByStatus(ctx context.Context) (map[model.PayoutStatus]PayoutStatusSummary, error)
	Recent(ctx context.Context, limit int) ([]*model.VendorPayout, error)
}

type payoutRepositoryImpl struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) PayoutRepository {
	return &payoutRepositoryImpl{db: db}
}

func (r *payoutRepositoryImpl) listQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Vendor").
		Preload("Vendor.BankAccount").
		Preload("Order")
}

func (r *payoutRepositoryImpl) List(ctx context.Context, filter PayoutFilter) ([]*model.VendorPayout, error) {
	query := r.listQuery(ctx).Order("vendor_payouts.created_at DESC")

	if len(filter.Statuses) > 0 {
		query = query.Where("vendor_payouts.status IN ?", filter.Statuses)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.
			Joins("LEFT JOIN users ON users.id = vendor_payouts.vendor_id").
			Joins("LEFT JOIN orders ON orders.id = vendor_payouts.order_id").
			Where("users.email LIKE ? OR users.first_name LIKE ? OR users.last_name LIKE ? OR orders.transaction_id LIKE ?",
				like, like, like, like)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var payouts []*model.VendorPayout
	err := query.Find(&payouts).Error
	return payouts, err
}

func (r *payoutRepositoryImpl) FindByID(ctx context.Context, id string) (*model.VendorPayout, error) {
	var payout model.VendorPayout
	err := r.listQuery(ctx).First(&payout, "vendor_payouts.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payout, nil
}

func (r *payoutRepositoryImpl) Save(ctx context.Context, payout *model.VendorPayout) error {
	return r.db.WithContext(ctx).Save(payout).Error
}

func (r *payoutRepositoryImpl) SummaryByStatus(ctx context.Context) (map[model.PayoutStatus]PayoutStatusSummary, error) {
	var rows []struct {
		Status model.PayoutStatus
		Count  int64
		Amount decimal.NullDecimal
	}
	err := r.db.WithContext(ctx).
		Model(&model.VendorPayout{}).
		Select("status, COUNT(*) AS count, SUM(net_amount) AS amount").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := make(map[model.PayoutStatus]PayoutStatusSummary, len(rows))
	for _, row := range rows {
		amount := decimal.Zero
		if row.Amount.Valid {
			amount = row.Amount.Decimal
		}
		summary[row.Status] = PayoutStatusSummary{Count: row.Count, Amount: amount}
	}
	return summary, nil
}

func (r *payoutRepositoryImpl) Recent(ctx context.Context, limit int) ([]*model.VendorPayout, error) {
	var payouts []*model.VendorPayout
	err := r.listQuery(ctx).
		Order("vendor_payouts.created_at DESC").
		Limit(limit).
		Find(&payouts).Error
	return payouts, err
}
