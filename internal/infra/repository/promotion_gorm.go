package repository

import (
	"context"
	"errors"
	"time"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"

	"gorm.io/gorm"
)

type PromotionGormRepository struct {
	db *gorm.DB
}

// DI
func NewPromotionGormRepository(db *gorm.DB) *PromotionGormRepository {
	return &PromotionGormRepository{db: db}
}

// 有効かつ期間内のものだけ
func (r *PromotionGormRepository) ListCurrent(ctx context.Context, now time.Time) ([]model.Promotion, error) {
	var promos []model.Promotion

	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("start_date <= ? AND end_date >= ?", now, now).
		Order("start_date desc").
		Find(&promos).Error
	if err != nil {
		return []model.Promotion{}, err
	}

	return promos, nil
}

func (r *PromotionGormRepository) ListAdmin(ctx context.Context) ([]model.Promotion, error) {
	var promos []model.Promotion

	err := r.db.WithContext(ctx).
		Order("created_at desc").Order("id desc").
		Find(&promos).Error
	if err != nil {
		return []model.Promotion{}, err
	}

	return promos, nil
}

func (r *PromotionGormRepository) FindByID(ctx context.Context, id int64) (model.Promotion, error) {
	var p model.Promotion
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Promotion{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Promotion{}, err
	}
	return p, nil
}

func (r *PromotionGormRepository) Create(ctx context.Context, p model.Promotion) (model.Promotion, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Promotion{}, err
	}
	return p, nil
}

func (r *PromotionGormRepository) Update(ctx context.Context, p model.Promotion) error {
	res := r.db.WithContext(ctx).Model(&model.Promotion{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"title":                   p.Title,
			"description":             p.Description,
			"discount_percentage":     p.DiscountPercentage,
			"minimum_purchase_amount": p.MinimumPurchaseAmount,
			"start_date":              p.StartDate,
			"end_date":                p.EndDate,
			"image_path":              p.ImagePath,
			"is_active":               p.IsActive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *PromotionGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Promotion{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
