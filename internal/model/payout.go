package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type VendorPayout struct {
	ID       string `gorm:"primaryKey;size:36;not null"`
	VendorID string `gorm:"size:36;index;not null;uniqueIndex:uniq_payout_vendor_order"`
	Vendor   *User  `gorm:"foreignKey:VendorID"`
	OrderID  string `gorm:"size:36;index;not null;uniqueIndex:uniq_payout_vendor_order"`
	Order    *Order `gorm:"foreignKey:OrderID"`

	ItemsCount  int             `gorm:"not null"`
	GrossAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PlatformFee decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	NetAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	Status PayoutStatus `gorm:"size:32;index;not null;default:waiting_confirmation"`

	BuyerConfirmedAt *time.Time
	AvailableOn      *time.Time
	ReleasedAt       *time.Time

	// Frozen copy of the vendor's bank account, taken at release time.
	BankAccountSnapshot string `gorm:"type:text"`

	Notes string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot decodes the stored bank account snapshot, nil when absent or
// unreadable.
func (p *VendorPayout) Snapshot() *BankAccountInfo {
	if p.BankAccountSnapshot == "" {
		return nil
	}
	var info BankAccountInfo
	if err := json.Unmarshal([]byte(p.BankAccountSnapshot), &info); err != nil {
		return nil
	}
	return &info
}

// SetSnapshot freezes the given account onto the payout.
func (p *VendorPayout) SetSnapshot(account *VendorBankAccount) {
	if account == nil {
		return
	}
	raw, err := json.Marshal(BankAccountInfoFrom(account))
	if err != nil {
		return
	}
	p.BankAccountSnapshot = string(raw)
}

// BankAccountInfo is the wire shape shared by live accounts and snapshots.
type BankAccountInfo struct {
	BankName          string `json:"bank_name"`
	AccountType       string `json:"account_type"`
	AccountNumber     string `json:"account_number"`
	AccountHolderName string `json:"account_holder_name"`
	DocumentType      string `json:"document_type"`
	DocumentNumber    string `json:"document_number"`
}

func BankAccountInfoFrom(account *VendorBankAccount) *BankAccountInfo {
	if account == nil {
		return nil
	}
	return &BankAccountInfo{
		BankName:          account.BankName,
		AccountType:       string(account.AccountType),
		AccountNumber:     account.AccountNumber,
		AccountHolderName: account.AccountHolderName,
		DocumentType:      string(account.DocumentType),
		DocumentNumber:    account.DocumentNumber,
	}
}

// RefreshStatus promotes a cleared payout to available once its
// availability date is reached. Returns true when the status changed.
func (p *VendorPayout) RefreshStatus(now time.Time) bool {
	if p.Status == PayoutPendingClearance && p.AvailableOn != nil && !now.Before(*p.AvailableOn) {
		p.Status = PayoutAvailable
		return true
	}
	return false
}

type BankAccountType string

const (
	BankAccountSavings  BankAccountType = "savings"
	BankAccountChecking BankAccountType = "checking"
)

type DocumentType string

const (
	DocumentCC    DocumentType = "cc"
	DocumentCE    DocumentType = "ce"
	DocumentNIT   DocumentType = "nit"
	DocumentOther DocumentType = "other"
)

type VendorBankAccount struct {
	ID     string `gorm:"primaryKey;size:36;not null"`
	UserID string `gorm:"size:36;uniqueIndex;not null"`

	BankName          string          `gorm:"size:120;not null"`
	AccountType       BankAccountType `gorm:"size:20;not null;default:savings"`
	AccountNumber     string          `gorm:"size:50;not null"`
	AccountHolderName string          `gorm:"size:255;not null"`
	DocumentType      DocumentType    `gorm:"size:20;not null;default:cc"`
	DocumentNumber    string          `gorm:"size:40;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
