package repository

import (
	"context"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 在庫が足りるときだけ減らす
// 同時実行でも合計減算が元の在庫を超えない
func (r *InventoryGormRepository) DecreaseStockIfEnough(ctx context.Context, partID int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Part{}).
		Where("id = ? AND stock >= ?", partID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 在庫戻し（キャンセル）
func (r *InventoryGormRepository) IncreaseStock(ctx context.Context, partID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Part{}).
		Where("id = ?", partID).
		Update("stock", gorm.Expr("stock + ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
