package repository

import (
	"context"

	"gorm.io/gorm"

	"yuancity-finance-portal/internal/model"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
}

type notificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}
