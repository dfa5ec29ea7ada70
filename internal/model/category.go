package model

import "time"

type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "Active"
	CategoryStatusInactive CategoryStatus = "Inactive"
)

type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:191;uniqueIndex;not null" json:"name"`
	Status    CategoryStatus `gorm:"size:10;not null;default:Active" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
