package repository

import (
	"context"

	"gorm.io/gorm"

	"yuancity-finance-portal/internal/model"
)

type ProductCounts struct {
	Total     int64
	Available int64
}

// CategoryCount is one slice of the dashboard category breakdown.
type CategoryCount struct {
	Name  string
	Total int64
}

type ProductRepository interface {
	List(ctx context.Context, limit int) ([]*model.Product, error)
	Counts(ctx context.Context) (*ProductCounts, error)
	CategoryBreakdown(ctx context.Context, top int) ([]CategoryCount, error)
	CountsByVendor(ctx context.Context) (map[string]int64, error)
}

type productRepositoryImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepositoryImpl{db: db}
}

func (r *productRepositoryImpl) List(ctx context.Context, limit int) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepositoryImpl) Counts(ctx context.Context) (*ProductCounts, error) {
	counts := &ProductCounts{}
	db := r.db.WithContext(ctx).Model(&model.Product{})

	if err := db.Session(&gorm.Session{}).Count(&counts.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).
		Where("is_available = ?", true).
		Count(&counts.Available).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *productRepositoryImpl) CountsByVendor(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		VendorID string
		Total    int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("vendor_id, COUNT(*) AS total").
		Where("vendor_id <> ''").
		Group("vendor_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.VendorID] = row.Total
	}
	return counts, nil
}

func (r *productRepositoryImpl) CategoryBreakdown(ctx context.Context, top int) ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("categories.name AS name, COUNT(*) AS total").
		Joins("JOIN categories ON categories.id = products.category_id").
		Group("categories.name").
		Having("COUNT(*) > 0").
		Order("total DESC").
		Limit(top).
		Scan(&rows).Error
	return rows, err
}
