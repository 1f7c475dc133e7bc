package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"yuancity-finance-portal/internal/model"
)

type UserCounts struct {
	Total              int64
	Active             int64
	Vendors            int64
	Clients            int64
	VendorsWithProduct int64
	VendorsWithSales   int64
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Save(ctx context.Context, user *model.User) error
	Counts(ctx context.Context) (*UserCounts, error)
	ListVendors(ctx context.Context, limit int) ([]*model.User, error)
	FindBankAccount(ctx context.Context, userID string) (*model.VendorBankAccount, error)
}

type userRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIdentifier resolves either an email or a phone number.
func (r *userRepositoryImpl) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	if strings.HasPrefix(identifier, "+") {
		var user model.User
		err := r.db.WithContext(ctx).Where("phone = ?", identifier).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		return &user, nil
	}
	return r.FindByEmail(ctx, identifier)
}

func (r *userRepositoryImpl) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepositoryImpl) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepositoryImpl) Save(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepositoryImpl) Counts(ctx context.Context) (*UserCounts, error) {
	counts := &UserCounts{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.User{}).Count(&counts.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.User{}).Where("is_active = ?", true).Count(&counts.Active).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.User{}).Where("rol = ?", model.RoleVendor).Count(&counts.Vendors).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.User{}).Where("rol = ?", model.RoleClient).Count(&counts.Clients).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Product{}).
		Where("vendor_id <> ''").
		Distinct("vendor_id").
		Count(&counts.VendorsWithProduct).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.OrderItem{}).
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.vendor_id <> ''").
		Distinct("products.vendor_id").
		Count(&counts.VendorsWithSales).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// ListVendors returns users that are vendors or own at least one product.
func (r *userRepositoryImpl) ListVendors(ctx context.Context, limit int) ([]*model.User, error) {
	var users []*model.User
	err := r.db.WithContext(ctx).
		Preload("BankAccount").
		Where("rol = ? OR id IN (SELECT DISTINCT vendor_id FROM products WHERE vendor_id <> '')",
			model.RoleVendor).
		Order("created_at DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *userRepositoryImpl) FindBankAccount(ctx context.Context, userID string) (*model.VendorBankAccount, error) {
	var account model.VendorBankAccount
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
