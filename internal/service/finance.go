package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"yuancity-finance-portal/internal/dto"
	"yuancity-finance-portal/internal/model"
	"yuancity-finance-portal/internal/repository"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
	recentLimit      = 5
	salesSeriesSpan  = 6
	categoryTopN     = 6
)

var monthLabels = [12]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

type FinanceService interface {
	DashboardSummary(ctx context.Context) (*dto.DashboardPayload, error)
	ListOrders(ctx context.Context, statuses []string, search string, limit int) ([]dto.FinanceOrder, error)
	GetOrder(ctx context.Context, id string) (*dto.FinanceOrder, error)
	ListPayouts(ctx context.Context, statuses []string, search string, limit int) ([]dto.FinancePayout, error)
	UpdatePayoutStatus(ctx context.Context, id string, req *dto.PayoutStatusUpdateRequest) (*dto.FinancePayout, error)
}

type financeServiceImpl struct {
	orderRepo   repository.OrderRepository
	payoutRepo  repository.PayoutRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	chatRepo    repository.ChatRepository
	now         func() time.Time
}

func NewFinanceService(
	orderRepo repository.OrderRepository,
	payoutRepo repository.PayoutRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	chatRepo repository.ChatRepository,
) FinanceService {
	return &financeServiceImpl{
		orderRepo:   orderRepo,
		payoutRepo:  payoutRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		chatRepo:    chatRepo,
		now:         time.Now,
	}
}

// ClampLimit normalizes a client-supplied page size the way every listing
// endpoint does: default 100, bounded to [1, 500].
func ClampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

func (s *financeServiceImpl) DashboardSummary(ctx context.Context) (*dto.DashboardPayload, error) {
	orderCounts, err := s.orderRepo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("order counts: %w", err)
	}
	salesTotal, err := s.orderRepo.SalesTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("sales total: %w", err)
	}
	itemsSold, err := s.orderRepo.ItemsSold(ctx)
	if err != nil {
		return nil, fmt.Errorf("items sold: %w", err)
	}
	userCounts, err := s.userRepo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("user counts: %w", err)
	}
	productCounts, err := s.productRepo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product counts: %w", err)
	}
	supportCounts, err := s.chatRepo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("support counts: %w", err)
	}
	payoutSummary, err := s.payoutRepo.SummaryByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("payout summary: %w", err)
	}

	avgOrderValue := decimal.Zero
	if orderCounts.Total > 0 {
		avgOrderValue = salesTotal.Div(decimal.NewFromInt(orderCounts.Total))
	}

	stats := dto.DashboardStats{
		OrdersTotal:         orderCounts.Total,
		OrdersPending:       orderCounts.Pending,
		OrdersDelivered:     orderCounts.Delivered,
		OrdersCancelled:     orderCounts.Cancelled,
		PayoutsWaiting:      payoutSummary[model.PayoutWaitingConfirmation].Count,
		PayoutsPending:      payoutSummary[model.PayoutPendingClearance].Count,
		PayoutsAvailable:    payoutSummary[model.PayoutAvailable].Count,
		PayoutsReleased:     payoutSummary[model.PayoutReleased].Count,
		PendingAmount:       payoutSummary[model.PayoutPendingClearance].Amount.StringFixed(2),
		AvailableAmount:     payoutSummary[model.PayoutAvailable].Amount.StringFixed(2),
		SalesTotal:          salesTotal.StringFixed(2),
		AvgOrderValue:       avgOrderValue.StringFixed(2),
		ItemsSold:           itemsSold,
		UsersTotal:          userCounts.Total,
		UsersActive:         userCounts.Active,
		UsersVendors:        userCounts.Vendors,
		UsersClients:        userCounts.Clients,
		VendorsWithProducts: userCounts.VendorsWithProduct,
		VendorsWithSales:    userCounts.VendorsWithSales,
		ProductsTotal:       productCounts.Total,
		ProductsAvailable:   productCounts.Available,
		SupportUnread:       supportCounts.Unread,
		SupportThreads:      supportCounts.Threads,
	}

	salesSeries, err := s.salesSeries(ctx)
	if err != nil {
		return nil, err
	}

	categoryRows, err := s.productRepo.CategoryBreakdown(ctx, categoryTopN)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}
	breakdown := make([]dto.CategorySlice, 0, len(categoryRows))
	for _, row := range categoryRows {
		breakdown = append(breakdown, dto.CategorySlice{Name: row.Name, Value: row.Total})
	}

	recentOrders, err := s.orderRepo.Recent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	recentPayouts, err := s.payoutRepo.Recent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent payouts: %w", err)
	}

	orders := make([]dto.FinanceOrder, 0, len(recentOrders))
	for _, order := range recentOrders {
		orders = append(orders, dto.NewFinanceOrder(order))
	}
	payouts := make([]dto.FinancePayout, 0, len(recentPayouts))
	for _, payout := range recentPayouts {
		payout.RefreshStatus(s.now())
		payouts = append(payouts, dto.NewFinancePayout(payout))
	}

	return &dto.DashboardPayload{
		Stats:             stats,
		SalesSeries:       salesSeries,
		CategoryBreakdown: breakdown,
		RecentOrders:      orders,
		RecentPayouts:     payouts,
	}, nil
}

// salesSeries builds the six-month window ending at the current month.
// Months with no orders are zero-filled so the chart axis stays stable.
func (s *financeServiceImpl) salesSeries(ctx context.Context) ([]dto.SalesPoint, error) {
	now := s.now()
	start := monthStart(now).AddDate(0, -(salesSeriesSpan - 1), 0)

	rows, err := s.orderRepo.MonthlySalesSince(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}

	byMonth := make(map[[2]int]repository.MonthlySales, len(rows))
	for _, row := range rows {
		byMonth[[2]int{row.Year, int(row.Month)}] = row
	}

	series := make([]dto.SalesPoint, 0, salesSeriesSpan)
	for offset := 0; offset < salesSeriesSpan; offset++ {
		month := start.AddDate(0, offset, 0)
		point := dto.SalesPoint{Month: monthLabels[int(month.Month())-1]}
		if row, ok := byMonth[[2]int{month.Year(), int(month.Month())}]; ok {
			point.Sales, _ = row.Sales.Float64()
			point.Clients = row.Clients
		}
		series = append(series, point)
	}
	return series, nil
}

func (s *financeServiceImpl) ListOrders(ctx context.Context, statuses []string, search string, limit int) ([]dto.FinanceOrder, error) {
	filter := repository.OrderFilter{
		Search: search,
		Limit:  ClampLimit(limit),
	}
	for _, raw := range statuses {
		status := model.OrderStatus(raw)
		if status.Valid() {
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	out := make([]dto.FinanceOrder, 0, len(orders))
	for _, order := range orders {
		out = append(out, dto.NewFinanceOrder(order))
	}
	return out, nil
}

func (s *financeServiceImpl) GetOrder(ctx context.Context, id string) (*dto.FinanceOrder, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	payload := dto.NewFinanceOrder(order)
	return &payload, nil
}

func (s *financeServiceImpl) ListPayouts(ctx context.Context, statuses []string, search string, limit int) ([]dto.FinancePayout, error) {
	filter := repository.PayoutFilter{
		Search: search,
		Limit:  ClampLimit(limit),
	}
	for _, raw := range statuses {
		status := model.PayoutStatus(raw)
		if status.Valid() {
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	payouts, err := s.payoutRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list payouts: %w", err)
	}

	now := s.now()
	out := make([]dto.FinancePayout, 0, len(payouts))
	for _, payout := range payouts {
		if payout.RefreshStatus(now) {
			if err := s.payoutRepo.Save(ctx, payout); err != nil {
				return nil, fmt.Errorf("refresh payout status: %w", err)
			}
		}
		out = append(out, dto.NewFinancePayout(payout))
	}
	return out, nil
}

func (s *financeServiceImpl) UpdatePayoutStatus(ctx context.Context, id string, req *dto.PayoutStatusUpdateRequest) (*dto.FinancePayout, error) {
	payout, err := s.payoutRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	target := model.PayoutStatus(req.Status)
	if !target.Valid() || target == model.PayoutCancelled {
		return nil, model.ErrInvalidStatus
	}
	if target != payout.Status && !payout.Status.CanTransition(target) {
		return nil, model.ErrInvalidTransition
	}

	now := s.now()
	payout.Status = target

	if req.Notes != nil {
		payout.Notes = *req.Notes
	}
	if req.AvailableOn != nil {
		payout.AvailableOn = req.AvailableOn
	}
	if req.BuyerConfirmed && payout.BuyerConfirmedAt == nil {
		payout.BuyerConfirmedAt = &now
	}

	if target == model.PayoutReleased {
		payout.ReleasedAt = &now
		// Freeze the bank account so a later account change cannot rewrite
		// where the money was sent.
		account, err := s.userRepo.FindBankAccount(ctx, payout.VendorID)
		if err == nil {
			payout.SetSnapshot(account)
		} else if err != model.ErrNotFound {
			return nil, fmt.Errorf("find bank account: %w", err)
		}
	} else {
		payout.ReleasedAt = nil
	}

	if err := s.payoutRepo.Save(ctx, payout); err != nil {
		return nil, fmt.Errorf("save payout: %w", err)
	}

	refreshed, err := s.payoutRepo.FindByID(ctx, payout.ID)
	if err != nil {
		return nil, err
	}
	payload := dto.NewFinancePayout(refreshed)
	return &payload, nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
