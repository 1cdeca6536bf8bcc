package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 単価は購入時点のスナップショット（以後のPart価格変更の影響を受けない）
type PurchaseItem struct {
	ID               int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PurchaseID       int64           `gorm:"not null;index" json:"purchase_id"`
	PartID           int64           `gorm:"not null;index" json:"part_id"`
	PartNameSnapshot string          `gorm:"type:varchar(200);not null" json:"part_name_snapshot"`
	Quantity         int64           `gorm:"not null" json:"quantity"`
	UnitPrice        decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"unit_price"`
	Subtotal         decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"subtotal"`
	CreatedAt        time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
