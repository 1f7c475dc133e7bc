package repository

import (
	"context"

	"gorm.io/gorm"

	"yuancity-finance-portal/internal/model"
)

type SupportCounts struct {
	Unread  int64
	Threads int64
}

// SupportThread is one order conversation summarized for the support view.
type SupportThread struct {
	OrderID       string
	TransactionID string
	Messages      int64
	Unread        int64
	LastMessageAt string
}

type ChatRepository interface {
	Counts(ctx context.Context) (*SupportCounts, error)
	Threads(ctx context.Context, limit int) ([]SupportThread, error)
}

type chatRepositoryImpl struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepositoryImpl{db: db}
}

func (r *chatRepositoryImpl) Counts(ctx context.Context) (*SupportCounts, error) {
	counts := &SupportCounts{}
	db := r.db.WithContext(ctx).Model(&model.OrderChatMessage{})

	if err := db.Session(&gorm.Session{}).
		Where("is_read = ?", false).
		Count(&counts.Unread).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).
		Distinct("order_id").
		Count(&counts.Threads).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *chatRepositoryImpl) Threads(ctx context.Context, limit int) ([]SupportThread, error) {
	var rows []SupportThread
	err := r.db.WithContext(ctx).
		Model(&model.OrderChatMessage{}).
		Select(`order_chat_messages.order_id AS order_id,
			orders.transaction_id AS transaction_id,
			COUNT(*) AS messages,
			SUM(CASE WHEN order_chat_messages.is_read THEN 0 ELSE 1 END) AS unread,
			MAX(order_chat_messages.created_at) AS last_message_at`).
		Joins("JOIN orders ON orders.id = order_chat_messages.order_id").
		Group("order_chat_messages.order_id, orders.transaction_id").
		Order("last_message_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
