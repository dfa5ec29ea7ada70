package model

import "time"

type RFPStatus string

const (
	RFPStatusOpen   RFPStatus = "open"
	RFPStatusClosed RFPStatus = "closed"
)

type AppliedStatus string

const (
	AppliedStatusOpen    AppliedStatus = "open"
	AppliedStatusApplied AppliedStatus = "applied"
)

type RFP struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AdminID         uint      `gorm:"not null;index" json:"admin_id"`
	RFPNo           string    `gorm:"column:rfp_no;size:50;uniqueIndex;not null" json:"rfp_no"`
	ItemName        string    `gorm:"size:255;not null" json:"item_name"`
	ItemDescription string    `gorm:"type:text" json:"item_description"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	LastDate        string    `gorm:"size:10;not null" json:"last_date"`
	MinimumPrice    float64   `gorm:"type:decimal(12,2);not null" json:"minimum_price"`
	MaximumPrice    float64   `gorm:"type:decimal(12,2);not null" json:"maximum_price"`
	Status          RFPStatus `gorm:"size:10;not null;default:open" json:"status"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Categories []RFPCategory `gorm:"foreignKey:RFPID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
	Vendors    []RFPVendor   `gorm:"foreignKey:RFPID;constraint:OnDelete:CASCADE" json:"vendors,omitempty"`
}

func (RFP) TableName() string { return "rfps" }

type RFPCategory struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	RFPID      uint `gorm:"column:rfp_id;uniqueIndex:idx_rfp_category;not null" json:"rfp_id"`
	CategoryID uint `gorm:"uniqueIndex:idx_rfp_category;not null" json:"category_id"`
}

func (RFPCategory) TableName() string { return "rfp_categories" }

// RFPVendor is an invitation for a vendor to quote on an RFP. Price fields
// and AppliedAt stay null until the quote is submitted, at which point
// AppliedStatus flips to applied exactly once.
type RFPVendor struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	RFPID         uint          `gorm:"column:rfp_id;uniqueIndex:idx_rfp_vendor;not null" json:"rfp_id"`
	VendorID      uint          `gorm:"uniqueIndex:idx_rfp_vendor;not null" json:"vendor_id"`
	AppliedStatus AppliedStatus `gorm:"size:10;not null;default:open" json:"applied_status"`
	ItemPrice     *float64      `gorm:"type:decimal(12,2)" json:"item_price"`
	TotalCost     *float64      `gorm:"type:decimal(12,2)" json:"total_cost"`
	AppliedAt     *time.Time    `json:"applied_at"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	RFP    RFP  `gorm:"foreignKey:RFPID;references:ID" json:"-"`
	Vendor User `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RFPVendor) TableName() string { return "rfp_vendors" }
