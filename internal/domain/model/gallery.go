package model

import "time"

// 施工事例などのギャラリー画像
type GalleryImage struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Description  string    `gorm:"type:varchar(500)" json:"description"`
	ImagePath    string    `gorm:"type:varchar(255);not null" json:"image_path"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
