package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   string `gorm:"primaryKey;size:36;not null"`
	Name string `gorm:"size:255;uniqueIndex;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Product struct {
	ID         string    `gorm:"primaryKey;size:36;not null"`
	VendorID   string    `gorm:"size:36;index"`
	Vendor     *User     `gorm:"foreignKey:VendorID"`
	CategoryID string    `gorm:"size:36;index"`
	Category   *Category `gorm:"foreignKey:CategoryID"`

	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Quantity    int             `gorm:"not null"`
	IsAvailable bool            `gorm:"index;not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Review struct {
	ID          string     `gorm:"primaryKey;size:36;not null"`
	ProductID   string     `gorm:"size:36;index;not null"`
	Product     *Product   `gorm:"foreignKey:ProductID"`
	UserID      string     `gorm:"size:36;index"`
	User        *User      `gorm:"foreignKey:UserID"`
	OrderItemID string     `gorm:"size:36;index"`
	OrderItem   *OrderItem `gorm:"foreignKey:OrderItemID"`

	Rating  float64 `gorm:"not null"`
	Comment string  `gorm:"type:text"`

	DateCreated time.Time
}
