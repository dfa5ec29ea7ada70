package model

import "time"

type UserType string

const (
	UserTypeAdmin  UserType = "admin"
	UserTypeVendor UserType = "vendor"
)

type UserStatus string

const (
	UserStatusPending  UserStatus = "Pending"
	UserStatusApproved UserStatus = "Approved"
	UserStatusRejected UserStatus = "Rejected"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FirstName    string     `gorm:"size:100;not null" json:"firstname"`
	LastName     string     `gorm:"size:100;not null" json:"lastname"`
	Email        string     `gorm:"size:225;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Mobile       string     `gorm:"size:15;not null" json:"mobile"`
	Type         UserType   `gorm:"size:10;not null" json:"type"`
	Status       UserStatus `gorm:"size:10;not null;default:Pending" json:"status"`
	OTP          *string    `gorm:"size:6" json:"-"`
	OTPExpiresAt *time.Time `json:"-"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Profile    *VendorProfile   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Categories []VendorCategory `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// VendorProfile holds the commercial details of a vendor account,
// one-to-one with the owning User.
type VendorProfile struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	NoOfEmployees string    `gorm:"size:50;not null" json:"no_of_employees"`
	Revenue       string    `gorm:"size:255;not null" json:"revenue"`
	PancardNo     string    `gorm:"size:20;uniqueIndex;not null" json:"pancard_no"`
	GstNo         string    `gorm:"size:30;uniqueIndex;not null" json:"gst_no"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (VendorProfile) TableName() string { return "vendor_details" }

// VendorCategory links a vendor user to a service category it declares.
type VendorCategory struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	UserID     uint `gorm:"uniqueIndex:idx_vendor_category;not null" json:"user_id"`
	CategoryID uint `gorm:"uniqueIndex:idx_vendor_category;not null" json:"category_id"`

	Category Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (VendorCategory) TableName() string { return "vendor_categories" }
