package repository

import (
	"context"
	"errors"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"

	"gorm.io/gorm"
)

type GalleryGormRepository struct {
	db *gorm.DB
}

// DI
func NewGalleryGormRepository(db *gorm.DB) *GalleryGormRepository {
	return &GalleryGormRepository{db: db}
}

// 公開側：表示順
func (r *GalleryGormRepository) ListActive(ctx context.Context) ([]model.GalleryImage, error) {
	var images []model.GalleryImage

	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order asc").Order("id asc").
		Find(&images).Error
	if err != nil {
		return []model.GalleryImage{}, err
	}

	return images, nil
}

func (r *GalleryGormRepository) ListAdmin(ctx context.Context) ([]model.GalleryImage, error) {
	var images []model.GalleryImage

	err := r.db.WithContext(ctx).
		Order("display_order asc").Order("id asc").
		Find(&images).Error
	if err != nil {
		return []model.GalleryImage{}, err
	}

	return images, nil
}

func (r *GalleryGormRepository) FindByID(ctx context.Context, id int64) (model.GalleryImage, error) {
	var g model.GalleryImage
	err := r.db.WithContext(ctx).First(&g, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.GalleryImage{}, repo.ErrNotFound
	}
	if err != nil {
		return model.GalleryImage{}, err
	}
	return g, nil
}

func (r *GalleryGormRepository) Create(ctx context.Context, g model.GalleryImage) (model.GalleryImage, error) {
	if err := r.db.WithContext(ctx).Create(&g).Error; err != nil {
		return model.GalleryImage{}, err
	}
	return g, nil
}

func (r *GalleryGormRepository) Update(ctx context.Context, g model.GalleryImage) error {
	res := r.db.WithContext(ctx).Model(&model.GalleryImage{}).
		Where("id = ?", g.ID).
		Updates(map[string]interface{}{
			"title":         g.Title,
			"description":   g.Description,
			"image_path":    g.ImagePath,
			"display_order": g.DisplayOrder,
			"is_active":     g.IsActive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *GalleryGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.GalleryImage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
