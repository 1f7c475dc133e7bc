package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            string      `gorm:"primaryKey;size:36;not null"`
	Status        OrderStatus `gorm:"size:50;index;not null;default:not_processed"`
	UserID        string      `gorm:"size:36;index;not null"`
	User          *User       `gorm:"foreignKey:UserID"`
	TransactionID string      `gorm:"size:255;uniqueIndex;not null"`

	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ShippingPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	FullName            string `gorm:"size:255"`
	AddressLine1        string `gorm:"size:255"`
	AddressLine2        string `gorm:"size:255"`
	City                string `gorm:"size:255"`
	StateProvinceRegion string `gorm:"size:255"`
	PostalZipCode       string `gorm:"size:20"`
	CountryRegion       string `gorm:"size:255;default:Colombia"`
	TelephoneNumber     string `gorm:"size:255"`
	ShippingName        string `gorm:"size:255"`
	ShippingTime        string `gorm:"size:255"`

	DateIssued       time.Time
	BuyerConfirmedAt *time.Time
	ShippedAt        *time.Time
	CompletedAt      *time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID        string   `gorm:"primaryKey;size:36;not null"`
	OrderID   string   `gorm:"size:36;index;not null"`
	Order     *Order   `gorm:"foreignKey:OrderID"`
	ProductID string   `gorm:"size:36;index"`
	Product   *Product `gorm:"foreignKey:ProductID"`

	Name  string          `gorm:"size:255;not null"`
	Price decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Count int             `gorm:"not null"`

	PlatformFee    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	VendorEarnings decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	DateAdded time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderChatMessage backs the support view: one thread per order.
type OrderChatMessage struct {
	ID       string `gorm:"primaryKey;size:36;not null"`
	OrderID  string `gorm:"size:36;index;not null"`
	Order    *Order `gorm:"foreignKey:OrderID"`
	SenderID string `gorm:"size:36;index;not null"`
	Sender   *User  `gorm:"foreignKey:SenderID"`

	Message       string `gorm:"type:text"`
	ImageURL      string `gorm:"size:512"`
	AudioURL      string `gorm:"size:512"`
	AudioDuration int

	// READ is reserved in MySQL, so the column carries an explicit name.
	Read   bool `gorm:"column:is_read;index;not null;default:false"`
	ReadAt *time.Time

	CreatedAt time.Time
}
