package model

import "time"

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleVendor UserRole = "vendor"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID        string   `gorm:"primaryKey;size:36;not null"`
	Email     string   `gorm:"size:255;uniqueIndex;not null"`
	FirstName string   `gorm:"size:255"`
	LastName  string   `gorm:"size:255"`
	Phone     string   `gorm:"size:32;index"`
	Rol       UserRole `gorm:"size:20;index;not null;default:client"`

	IsStaff       bool `gorm:"not null;default:false"`
	IsActive      bool `gorm:"not null;default:true"`
	PhoneVerified bool `gorm:"not null;default:false"`

	BankAccount *VendorBankAccount `gorm:"foreignKey:UserID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return ""
	case u.LastName == "":
		return u.FirstName
	case u.FirstName == "":
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}

// DisplayName falls back to the email when no name is set.
func (u *User) DisplayName() string {
	if name := u.FullName(); name != "" {
		return name
	}
	return u.Email
}

func (u *User) IsAdmin() bool {
	return u.IsStaff || u.Rol == RoleAdmin
}
