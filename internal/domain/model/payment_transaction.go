package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusConfirmed PaymentStatus = "CONFIRMED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

type PaymentTransaction struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PurchaseID      int64           `gorm:"not null;index" json:"purchase_id"`
	PaymentMethodID int64           `gorm:"not null" json:"payment_method_id"`
	UserID          int64           `gorm:"not null;index" json:"user_id"`
	Amount          decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"amount"`
	TransactionDate time.Time       `gorm:"not null" json:"transaction_date"`
	Status          PaymentStatus   `gorm:"type:varchar(20);not null;index" json:"status"`

	//購入IDと時刻から生成（購入ごとに一意）
	TransactionReference string `gorm:"type:varchar(200);not null;uniqueIndex" json:"transaction_reference"`

	ProofImagePath string     `gorm:"type:varchar(255)" json:"proof_image_path"`
	ConfirmedAt    *time.Time `json:"confirmed_at,omitempty"`
}
