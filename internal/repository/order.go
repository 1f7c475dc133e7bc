package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"yuancity-finance-portal/internal/model"
)

// OrderFilter narrows finance/admin order listings.
type OrderFilter struct {
	Statuses []model.OrderStatus
	Search   string
	Limit    int
}

type OrderCounts struct {
	Total     int64
	Pending   int64
	Delivered int64
	Cancelled int64
}

// MonthlySales is one bucket of the six-month dashboard series.
type MonthlySales struct {
	Year    int
	Month   time.Month
	Sales   decimal.Decimal
	Clients int64
}

type OrderRepository interface {
	List(ctx context.Context, filter OrderFilter) ([]*model.Order, error)
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*model.Order, error)
	Save(ctx context.Context, order *model.Order, fields ...string) error
	Counts(ctx context.Context) (*OrderCounts, error)
	SalesTotal(ctx context.Context) (decimal.Decimal, error)
	ItemsSold(ctx context.Context) (int64, error)
	MonthlySalesSince(ctx context.Context, since time.Time) ([]MonthlySales, error)
	Recent(ctx context.Context, limit int) ([]*model.Order, error)
}

type orderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepositoryImpl{db: db}
}

func (r *orderRepositoryImpl) listQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Vendor")
}

func (r *orderRepositoryImpl) List(ctx context.Context, filter OrderFilter) ([]*model.Order, error) {
	query := r.listQuery(ctx).Order("date_issued DESC")

	if len(filter.Statuses) > 0 {
		query = query.Where("orders.status IN ?", filter.Statuses)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.
			Joins("LEFT JOIN users ON users.id = orders.user_id").
			Where("orders.transaction_id LIKE ? OR users.email LIKE ? OR orders.full_name LIKE ?",
				like, like, like)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var orders []*model.Order
	err := query.Find(&orders).Error
	return orders, err
}

func (r *orderRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.listQuery(ctx).First(&order, "orders.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepositoryImpl) FindByTransactionID(ctx context.Context, transactionID string) (*model.Order, error) {
	var order model.Order
	err := r.listQuery(ctx).First(&order, "orders.transaction_id = ?", transactionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepositoryImpl) Save(ctx context.Context, order *model.Order, fields ...string) error {
	if len(fields) == 0 {
		return r.db.WithContext(ctx).Save(order).Error
	}
	return r.db.WithContext(ctx).
		Model(order).
		Select(fields).
		Updates(order).Error
}

func (r *orderRepositoryImpl) Counts(ctx context.Context) (*OrderCounts, error) {
	counts := &OrderCounts{}
	db := r.db.WithContext(ctx).Model(&model.Order{})

	if err := db.Session(&gorm.Session{}).Count(&counts.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).
		Where("status <> ?", model.OrderDelivered).
		Count(&counts.Pending).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).
		Where("status = ?", model.OrderDelivered).
		Count(&counts.Delivered).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).
		Where("status = ?", model.OrderCancelled).
		Count(&counts.Cancelled).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *orderRepositoryImpl) SalesTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("SUM(amount)").
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *orderRepositoryImpl) ItemsSold(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Select("COALESCE(SUM(count), 0)").
		Scan(&total).Error
	return total, err
}

func (r *orderRepositoryImpl) MonthlySalesSince(ctx context.Context, since time.Time) ([]MonthlySales, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where("date_issued >= ?", since).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	type bucket struct {
		sales   decimal.Decimal
		clients map[string]struct{}
	}
	buckets := map[[2]int]*bucket{}
	for _, order := range orders {
		key := [2]int{order.DateIssued.Year(), int(order.DateIssued.Month())}
		b := buckets[key]
		if b == nil {
			b = &bucket{sales: decimal.Zero, clients: map[string]struct{}{}}
			buckets[key] = b
		}
		b.sales = b.sales.Add(order.Amount)
		b.clients[order.UserID] = struct{}{}
	}

	rows := make([]MonthlySales, 0, len(buckets))
	for key, b := range buckets {
		rows = append(rows, MonthlySales{
			Year:    key[0],
			Month:   time.Month(key[1]),
			Sales:   b.sales,
			Clients: int64(len(b.clients)),
		})
	}
	return rows, nil
}

func (r *orderRepositoryImpl) Recent(ctx context.Context, limit int) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.listQuery(ctx).
		Order("date_issued DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}
