package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 在庫は負数にならない（checkで保証）
// 非公開（is_active=false）の部品は購入不可
type Part struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"price"`
	Stock       int64           `gorm:"not null;check:stock >= 0" json:"stock"`
	Category    string          `gorm:"type:varchar(100)" json:"category"`
	Brand       string          `gorm:"type:varchar(100)" json:"brand"`
	ImagePath   string          `gorm:"type:varchar(255)" json:"image_path"`
	IsActive    bool            `gorm:"not null;default:false" json:"is_active"`

	//楽観ロック用のバージョン
	Version int64 `gorm:"not null;default:0" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
