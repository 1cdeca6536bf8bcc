package model

// 支払い方法のマスタ
type PaymentMethod struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(500)" json:"description"`
	IconPath    string `gorm:"type:varchar(255)" json:"icon_path"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
}
