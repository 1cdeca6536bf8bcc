package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "PENDING"
	PurchaseStatusConfirmed PurchaseStatus = "CONFIRMED"
	PurchaseStatusCancelled PurchaseStatus = "CANCELLED"
	PurchaseStatusCompleted PurchaseStatus = "COMPLETED"
)

// 注文。明細（PurchaseItem）と同時に作成される。
type Purchase struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`

	//店頭販売の担当スタッフ（通常のEC注文ではnull）
	StaffID *int64 `gorm:"index" json:"staff_id,omitempty"`

	PurchaseDate   time.Time       `gorm:"not null;index" json:"purchase_date"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"total_amount"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"discount_amount"`
	Status         PurchaseStatus  `gorm:"type:varchar(20);not null;index" json:"status"`
	Notes          string          `gorm:"type:varchar(500)" json:"notes"`
	PromotionID    *int64          `json:"promotion_id,omitempty"`

	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
