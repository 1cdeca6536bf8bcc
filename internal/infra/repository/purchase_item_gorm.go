package repository

import (
	"context"

	"carparts/internal/domain/model"

	"gorm.io/gorm"
)

type PurchaseItemGormRepository struct {
	db *gorm.DB
}

func NewPurchaseItemGormRepository(db *gorm.DB) *PurchaseItemGormRepository {
	return &PurchaseItemGormRepository{db: db}
}

// 明細を一括作成
func (r *PurchaseItemGormRepository) CreateBulk(ctx context.Context, purchaseID int64, items []model.PurchaseItem) error {
	if len(items) == 0 {
		return nil
	}

	for i := range items {
		items[i].PurchaseID = purchaseID
	}

	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *PurchaseItemGormRepository) ListByPurchaseID(ctx context.Context, purchaseID int64) ([]model.PurchaseItem, error) {
	var items []model.PurchaseItem

	if err := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.PurchaseItem{}, err
	}

	return items, nil
}
