package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"yuancity-finance-portal/internal/model"
	"yuancity-finance-portal/internal/notify"
	"yuancity-finance-portal/internal/repository"
)

// In-memory fakes for the repository and outbound interfaces.

type mockOrderRepo struct {
	orders     map[string]*model.Order
	savedWith  [][]string
	counts     repository.OrderCounts
	salesTotal decimal.Decimal
	itemsSold  int64
	monthly    []repository.MonthlySales
	recent     []*model.Order
}

func newMockOrderRepo(orders ...*model.Order) *mockOrderRepo {
	repo := &mockOrderRepo{orders: make(map[string]*model.Order)}
	for _, order := range orders {
		repo.orders[order.ID] = order
	}
	return repo
}

func (m *mockOrderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]*model.Order, error) {
	var out []*model.Order
	for _, order := range m.orders {
		if len(filter.Statuses) > 0 {
			match := false
			for _, status := range filter.Statuses {
				if order.Status == status {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, order)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return order, nil
}

func (m *mockOrderRepo) FindByTransactionID(ctx context.Context, transactionID string) (*model.Order, error) {
	for _, order := range m.orders {
		if order.TransactionID == transactionID {
			return order, nil
		}
	}
	return nil, model.ErrNotFound
}

func (m *mockOrderRepo) Save(ctx context.Context, order *model.Order, fields ...string) error {
	m.orders[order.ID] = order
	m.savedWith = append(m.savedWith, fields)
	return nil
}

func (m *mockOrderRepo) Counts(ctx context.Context) (*repository.OrderCounts, error) {
	counts := m.counts
	return &counts, nil
}

func (m *mockOrderRepo) SalesTotal(ctx context.Context) (decimal.Decimal, error) {
	return m.salesTotal, nil
}

func (m *mockOrderRepo) ItemsSold(ctx context.Context) (int64, error) {
	return m.itemsSold, nil
}

func (m *mockOrderRepo) MonthlySalesSince(ctx context.Context, since time.Time) ([]repository.MonthlySales, error) {
	return m.monthly, nil
}

func (m *mockOrderRepo) Recent(ctx context.Context, limit int) ([]*model.Order, error) {
	return m.recent, nil
}

type mockPayoutRepo struct {
	payouts map[string]*model.VendorPayout
	saved   []string
	summary map[model.PayoutStatus]repository.PayoutStatusSummary
	recent  []*model.VendorPayout
}

func newMockPayoutRepo(payouts ...*model.VendorPayout) *mockPayoutRepo {
	repo := &mockPayoutRepo{payouts: make(map[string]*model.VendorPayout)}
	for _, payout := range payouts {
		repo.payouts[payout.ID] = payout
	}
	return repo
}

func (m *mockPayoutRepo) List(ctx context.Context, filter repository.PayoutFilter) ([]*model.VendorPayout, error) {
	var out []*model.VendorPayout
	for _, payout := range m.payouts {
		if len(filter.Statuses) > 0 {
			match := false
			for _, status := range filter.Statuses {
				if payout.Status == status {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, payout)
	}
	return out, nil
}

func (m *mockPayoutRepo) FindByID(ctx context.Context, id string) (*model.VendorPayout, error) {
	payout, ok := m.payouts[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return payout, nil
}

func (m *mockPayoutRepo) Save(ctx context.Context, payout *model.VendorPayout) error {
	m.payouts[payout.ID] = payout
	m.saved = append(m.saved, payout.ID)
	return nil
}

func (m *mockPayoutRepo) SummaryByStatus(ctx context.Context) (map[model.PayoutStatus]repository.PayoutStatusSummary, error) {
	if m.summary == nil {
		return map[model.PayoutStatus]repository.PayoutStatusSummary{}, nil
	}
	return m.summary, nil
}

func (m *mockPayoutRepo) Recent(ctx context.Context, limit int) ([]*model.VendorPayout, error) {
	return m.recent, nil
}

type mockUserRepo struct {
	users        map[string]*model.User
	bankAccounts map[string]*model.VendorBankAccount
	created      []*model.User
	saves        int
	counts       repository.UserCounts
	vendors      []*model.User
}

func newMockUserRepo(users ...*model.User) *mockUserRepo {
	repo := &mockUserRepo{
		users:        make(map[string]*model.User),
		bankAccounts: make(map[string]*model.VendorBankAccount),
	}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range m.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, model.ErrNotFound
}

func (m *mockUserRepo) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	if strings.HasPrefix(identifier, "+") {
		for _, user := range m.users {
			if user.Phone == identifier {
				return user, nil
			}
		}
		return nil, model.ErrNotFound
	}
	return m.FindByEmail(ctx, identifier)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	m.users[user.ID] = user
	m.created = append(m.created, user)
	return nil
}

func (m *mockUserRepo) Save(ctx context.Context, user *model.User) error {
	m.users[user.ID] = user
	m.saves++
	return nil
}

func (m *mockUserRepo) Counts(ctx context.Context) (*repository.UserCounts, error) {
	counts := m.counts
	return &counts, nil
}

func (m *mockUserRepo) ListVendors(ctx context.Context, limit int) ([]*model.User, error) {
	return m.vendors, nil
}

func (m *mockUserRepo) FindBankAccount(ctx context.Context, userID string) (*model.VendorBankAccount, error) {
	account, ok := m.bankAccounts[userID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return account, nil
}

type mockProductRepo struct {
	products  []*model.Product
	counts    repository.ProductCounts
	breakdown []repository.CategoryCount
	byVendor  map[string]int64
}

func (m *mockProductRepo) List(ctx context.Context, limit int) ([]*model.Product, error) {
	return m.products, nil
}

func (m *mockProductRepo) Counts(ctx context.Context) (*repository.ProductCounts, error) {
	counts := m.counts
	return &counts, nil
}

func (m *mockProductRepo) CategoryBreakdown(ctx context.Context, top int) ([]repository.CategoryCount, error) {
	return m.breakdown, nil
}

func (m *mockProductRepo) CountsByVendor(ctx context.Context) (map[string]int64, error) {
	if m.byVendor == nil {
		return map[string]int64{}, nil
	}
	return m.byVendor, nil
}

type mockChatRepo struct {
	counts  repository.SupportCounts
	threads []repository.SupportThread
}

func (m *mockChatRepo) Counts(ctx context.Context) (*repository.SupportCounts, error) {
	counts := m.counts
	return &counts, nil
}

func (m *mockChatRepo) Threads(ctx context.Context, limit int) ([]repository.SupportThread, error) {
	return m.threads, nil
}

type mockReviewRepo struct {
	reviews []*model.Review
}

func (m *mockReviewRepo) List(ctx context.Context, limit int) ([]*model.Review, error) {
	return m.reviews, nil
}

type mockNotificationRepo struct {
	created []*model.Notification
	err     error
}

func (m *mockNotificationRepo) Create(ctx context.Context, notification *model.Notification) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, notification)
	return nil
}

type mockPublisher struct {
	events []*notify.PushEvent
	err    error
}

func (m *mockPublisher) PublishPush(ctx context.Context, event *notify.PushEvent) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockPublisher) Close() error { return nil }

type mockOTPStore struct {
	codes map[string]string
	ttls  map[string]time.Duration
}

func newMockOTPStore() *mockOTPStore {
	return &mockOTPStore{codes: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (m *mockOTPStore) Put(ctx context.Context, identifier, code string, ttl time.Duration) error {
	m.codes[identifier] = code
	m.ttls[identifier] = ttl
	return nil
}

func (m *mockOTPStore) Consume(ctx context.Context, identifier, code string) (bool, error) {
	stored, ok := m.codes[identifier]
	if !ok || stored != code {
		return false, nil
	}
	delete(m.codes, identifier)
	return true, nil
}

type smsMessage struct {
	To   string
	Body string
}

type mockSMSClient struct {
	sent []smsMessage
	err  error
}

func (m *mockSMSClient) SendSMS(ctx context.Context, toNumber, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, smsMessage{To: toNumber, Body: body})
	return nil
}
