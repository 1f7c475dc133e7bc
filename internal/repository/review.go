package repository

import (
	"context"

	"gorm.io/gorm"

	"yuancity-finance-portal/internal/model"
)

type ReviewRepository interface {
	List(ctx context.Context, limit int) ([]*model.Review, error)
}

type reviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

func (r *reviewRepositoryImpl) List(ctx context.Context, limit int) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("User").
		Preload("OrderItem").
		Preload("OrderItem.Order").
		Order("date_created DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}
