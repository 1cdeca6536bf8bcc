package model

import "time"

// (user_id, part_id) につき1行
type CartItem struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   int64     `gorm:"not null;index;uniqueIndex:uq_cart_user_part" json:"user_id"`
	PartID   int64     `gorm:"not null;index;uniqueIndex:uq_cart_user_part" json:"part_id"`
	Quantity int64     `gorm:"not null" json:"quantity"`
	AddedAt  time.Time `gorm:"not null;autoCreateTime" json:"added_at"`
}
