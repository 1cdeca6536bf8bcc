package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Promotion struct {
	ID                    int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title                 string           `gorm:"type:varchar(200);not null" json:"title"`
	Description           string           `gorm:"type:text" json:"description"`
	DiscountPercentage    decimal.Decimal  `gorm:"type:numeric(5,2);not null" json:"discount_percentage"`
	MinimumPurchaseAmount *decimal.Decimal `gorm:"type:numeric(18,2)" json:"minimum_purchase_amount,omitempty"`
	StartDate             time.Time        `gorm:"not null" json:"start_date"`
	EndDate               time.Time        `gorm:"not null" json:"end_date"`
	ImagePath             string           `gorm:"type:varchar(255)" json:"image_path"`
	IsActive              bool             `gorm:"not null;default:true" json:"is_active"`
	CreatedAt             time.Time        `gorm:"not null;autoCreateTime" json:"created_at"`
}
