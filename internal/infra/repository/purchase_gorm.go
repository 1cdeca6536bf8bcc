package repository

import (
	"context"
	"errors"
	"time"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"

	"gorm.io/gorm"
)

type PurchaseGormRepository struct {
	db *gorm.DB
}

func NewPurchaseGormRepository(db *gorm.DB) *PurchaseGormRepository {
	return &PurchaseGormRepository{db: db}
}

func (r *PurchaseGormRepository) FindByID(ctx context.Context, purchaseID int64) (model.Purchase, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).Where("id = ?", purchaseID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Purchase{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Purchase{}, err
	}
	return p, nil
}

func (r *PurchaseGormRepository) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Purchase, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return []model.Purchase{}, 0, err
	}

	var items []model.Purchase
	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return []model.Purchase{}, 0, err
	}

	return items, total, nil
}

func (r *PurchaseGormRepository) Create(ctx context.Context, purchase model.Purchase) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&purchase).Error; err != nil {
		return 0, err
	}
	return purchase.ID, nil
}

func (r *PurchaseGormRepository) UpdateStatus(ctx context.Context, purchaseID int64, from model.PurchaseStatus, to model.PurchaseStatus, confirmedAt *time.Time, completedAt *time.Time) error {
	values := map[string]interface{}{
		"status": to,
	}
	if confirmedAt != nil {
		values["confirmed_at"] = *confirmedAt
	}
	if completedAt != nil {
		values["completed_at"] = *completedAt
	}

	//条件付きUPDATE。並行する遷移はどちらか一方しか効かない。
	res := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("id = ? AND status = ?", purchaseID, from).
		Updates(values)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrConflict
	}
	return nil
}

func (r *PurchaseGormRepository) ListAdmin(ctx context.Context, f repo.AdminPurchaseListFilter) ([]model.Purchase, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 50
	}

	q := r.db.WithContext(ctx).Model(&model.Purchase{})

	//status 絞り込み
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	//user_id 絞り込み
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}

	//期間絞り込み
	if f.From != nil {
		q = q.Where("purchase_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("purchase_date <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return []model.Purchase{}, 0, err
	}

	var items []model.Purchase
	offset := (f.Page - 1) * f.Limit
	if err := q.Order("purchase_date desc").Order("id desc").Limit(f.Limit).Offset(offset).Find(&items).Error; err != nil {
		return []model.Purchase{}, 0, err
	}

	return items, total, nil
}
