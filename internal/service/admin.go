package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"yuancity-finance-portal/internal/dto"
	"yuancity-finance-portal/internal/model"
	"yuancity-finance-portal/internal/notify"
	"yuancity-finance-portal/internal/repository"
)

type pushMessage struct {
	Title string
	Body  string
}

var statusPushMessages = map[model.OrderStatus]pushMessage{
	model.OrderNotProcessed: {
		"Pedido recibido 📦",
		"Tu pedido ha sido recibido y pronto será procesado.",
	},
	model.OrderProcessed: {
		"Pedido en preparación 📦",
		"El vendedor está preparando tu orden.",
	},
	model.OrderShipping: {
		"Pedido en camino 🚚",
		"Nuestro equipo coordina la entrega en tu dirección.",
	},
	model.OrderDelivered: {
		"Pedido completado 🎉",
		"¡Gracias por tu compra! Esperamos que disfrutes tu pedido.",
	},
	model.OrderCancelled: {
		"Pedido cancelado ❌",
		"Tu pedido fue cancelado. Si tienes dudas, contáctanos.",
	},
}

type AdminService interface {
	ListOrders(ctx context.Context, limit int) ([]dto.AdminOrderRow, error)
	GetOrder(ctx context.Context, transactionID string) (*dto.AdminOrderDetail, error)
	UpdateOrderStatus(ctx context.Context, orderID string, target string) (*dto.OrderStatusUpdateResponse, error)
	ListProducts(ctx context.Context, limit int) ([]dto.AdminProduct, error)
	ListReviews(ctx context.Context, limit int) ([]dto.AdminReview, error)
	ListVendors(ctx context.Context, limit int) ([]dto.AdminVendor, error)
	ListSupportThreads(ctx context.Context, limit int) ([]dto.SupportThread, error)
}

type adminServiceImpl struct {
	orderRepo        repository.OrderRepository
	productRepo      repository.ProductRepository
	reviewRepo       repository.ReviewRepository
	userRepo         repository.UserRepository
	chatRepo         repository.ChatRepository
	notificationRepo repository.NotificationRepository
	publisher        notify.Publisher
	now              func() time.Time
}

func NewAdminService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	chatRepo repository.ChatRepository,
	notificationRepo repository.NotificationRepository,
	publisher notify.Publisher,
) AdminService {
	return &adminServiceImpl{
		orderRepo:        orderRepo,
		productRepo:      productRepo,
		reviewRepo:       reviewRepo,
		userRepo:         userRepo,
		chatRepo:         chatRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		now:              time.Now,
	}
}

func (s *adminServiceImpl) ListOrders(ctx context.Context, limit int) ([]dto.AdminOrderRow, error) {
	orders, err := s.orderRepo.List(ctx, repository.OrderFilter{Limit: ClampLimit(limit)})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	rows := make([]dto.AdminOrderRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, dto.NewAdminOrderRow(order))
	}
	return rows, nil
}

func (s *adminServiceImpl) GetOrder(ctx context.Context, transactionID string) (*dto.AdminOrderDetail, error) {
	order, err := s.orderRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	detail := dto.NewAdminOrderDetail(order)
	return &detail, nil
}

func (s *adminServiceImpl) UpdateOrderStatus(ctx context.Context, orderID string, target string) (*dto.OrderStatusUpdateResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	newStatus := model.OrderStatus(target)
	if !newStatus.Valid() {
		return nil, model.ErrInvalidStatus
	}
	if order.Status.Terminal() {
		return nil, model.ErrOrderTerminal
	}
	if !order.Status.CanTransition(newStatus) {
		return nil, model.ErrStatusRegression
	}

	now := s.now()
	order.Status = newStatus
	fields := []string{"status", "updated_at"}
	switch {
	case newStatus == model.OrderShipping && order.ShippedAt == nil:
		order.ShippedAt = &now
		fields = append(fields, "shipped_at")
	case newStatus == model.OrderDelivered && order.CompletedAt == nil:
		order.CompletedAt = &now
		fields = append(fields, "completed_at")
	}

	if err := s.orderRepo.Save(ctx, order, fields...); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.notifyStatusChange(ctx, order)

	return &dto.OrderStatusUpdateResponse{
		Success:       "Estado actualizado correctamente",
		Status:        string(order.Status),
		OrderID:       order.ID,
		TransactionID: order.TransactionID,
	}, nil
}

// notifyStatusChange records and publishes the buyer push. Delivery is best
// effort: a broker outage must not fail the status update.
func (s *adminServiceImpl) notifyStatusChange(ctx context.Context, order *model.Order) {
	message, ok := statusPushMessages[order.Status]
	if !ok {
		message = pushMessage{
			Title: "Actualización de pedido",
			Body:  fmt.Sprintf("El estado ahora es %s", order.Status),
		}
	}

	data := map[string]string{
		"type":           "order_status",
		"transaction_id": order.TransactionID,
		"order_id":       order.ID,
		"status":         string(order.Status),
	}
	rawData, _ := json.Marshal(data)

	notification := &model.Notification{
		ID:     uuid.NewString(),
		UserID: order.UserID,
		Title:  message.Title,
		Body:   message.Body,
		Data:   string(rawData),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("could not record notification: %v", err)
	}

	event := &notify.PushEvent{
		UserID: order.UserID,
		Title:  message.Title,
		Body:   message.Body,
		Data:   data,
	}
	if err := s.publisher.PublishPush(ctx, event); err != nil {
		log.Printf("could not publish push: %v", err)
	}
}

func (s *adminServiceImpl) ListProducts(ctx context.Context, limit int) ([]dto.AdminProduct, error) {
	products, err := s.productRepo.List(ctx, ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	out := make([]dto.AdminProduct, 0, len(products))
	for _, product := range products {
		out = append(out, dto.NewAdminProduct(product))
	}
	return out, nil
}

func (s *adminServiceImpl) ListReviews(ctx context.Context, limit int) ([]dto.AdminReview, error) {
	reviews, err := s.reviewRepo.List(ctx, ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	out := make([]dto.AdminReview, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, dto.NewAdminReview(review))
	}
	return out, nil
}

func (s *adminServiceImpl) ListVendors(ctx context.Context, limit int) ([]dto.AdminVendor, error) {
	vendors, err := s.userRepo.ListVendors(ctx, ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	counts, err := s.productRepo.CountsByVendor(ctx)
	if err != nil {
		return nil, fmt.Errorf("vendor product counts: %w", err)
	}

	out := make([]dto.AdminVendor, 0, len(vendors))
	for _, vendor := range vendors {
		out = append(out, dto.NewAdminVendor(vendor, counts[vendor.ID]))
	}
	return out, nil
}

func (s *adminServiceImpl) ListSupportThreads(ctx context.Context, limit int) ([]dto.SupportThread, error) {
	threads, err := s.chatRepo.Threads(ctx, ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list support threads: %w", err)
	}

	out := make([]dto.SupportThread, 0, len(threads))
	for _, thread := range threads {
		out = append(out, dto.SupportThread{
			OrderID:       thread.OrderID,
			TransactionID: thread.TransactionID,
			Messages:      thread.Messages,
			Unread:        thread.Unread,
			LastMessageAt: thread.LastMessageAt,
		})
	}
	return out, nil
}
