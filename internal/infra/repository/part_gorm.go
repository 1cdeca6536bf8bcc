package repository

import (
	"context"
	"errors"
	"strings"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"

	"gorm.io/gorm"
)

type PartGormRepository struct {
	db *gorm.DB
}

// DI
func NewPartGormRepository(db *gorm.DB) *PartGormRepository {
	return &PartGormRepository{db: db}
}

// 公開部品のみを、検索/カテゴリ/ブランド/ソート/ページング付きで返す。
func (r *PartGormRepository) ListPublic(ctx context.Context, q repo.PartListQuery) ([]model.Part, int64, error) {
	var parts []model.Part
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Part{})

	tx = tx.Where("is_active = ?", true)

	// q は部品名を対象
	if strings.TrimSpace(q.Q) != "" {
		like := "%" + strings.TrimSpace(q.Q) + "%"
		tx = tx.Where("name ILIKE ?", like)
	}

	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Brand != "" {
		tx = tx.Where("brand = ?", q.Brand)
	}

	//total（件数）
	if err := tx.Count(&total).Error; err != nil {
		return []model.Part{}, 0, err
	}

	//sort
	switch q.Sort {
	case "price_asc":
		tx = tx.Order("price asc").Order("id asc")
	case "price_desc":
		tx = tx.Order("price desc").Order("id desc")
	default:
		tx = tx.Order("created_at desc").Order("id desc")
	}

	offset := (q.Page - 1) * q.Limit
	if err := tx.Offset(offset).Limit(q.Limit).Find(&parts).Error; err != nil {
		return []model.Part{}, 0, err
	}

	return parts, total, nil
}

// 管理者用：非公開も含めて新しい順
func (r *PartGormRepository) ListAdmin(ctx context.Context, page int, limit int) ([]model.Part, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Part{}).Count(&total).Error; err != nil {
		return []model.Part{}, 0, err
	}

	var parts []model.Part
	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Order("created_at desc").Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&parts).Error
	if err != nil {
		return []model.Part{}, 0, err
	}

	return parts, total, nil
}

// IDで部品を取得
func (r *PartGormRepository) FindByID(ctx context.Context, id int64) (model.Part, error) {
	var p model.Part
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Part{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Part{}, err
	}
	return p, nil
}

// 部品の作成
func (r *PartGormRepository) Create(ctx context.Context, p model.Part) (model.Part, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Part{}, err
	}
	return p, nil
}

// versionが一致したときだけ更新する（楽観ロック）
func (r *PartGormRepository) Update(ctx context.Context, p model.Part) error {
	res := r.db.WithContext(ctx).Model(&model.Part{}).
		Where("id = ? AND version = ?", p.ID, p.Version).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"stock":       p.Stock,
			"category":    p.Category,
			"brand":       p.Brand,
			"image_path":  p.ImagePath,
			"is_active":   p.IsActive,
			"version":     p.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		//消えたのか、versionがずれたのかを区別する
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Part{}).
			Where("id = ?", p.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return repo.ErrNotFound
		}
		return repo.ErrConflict
	}
	return nil
}

// 部品削除。参照しているカート行も同時に消す（cascade）
func (r *PartGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("part_id = ?", id).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.Part{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}

// 購入履歴のある部品か（restrict判定用）
func (r *PartGormRepository) HasPurchaseHistory(ctx context.Context, partID int64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&model.PurchaseItem{}).
		Where("part_id = ?", partID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
