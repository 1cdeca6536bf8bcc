package repository

import (
	"context"

	"carparts/internal/domain/model"
)

type GalleryRepository interface {
	//公開側：表示順
	ListActive(ctx context.Context) ([]model.GalleryImage, error)
	ListAdmin(ctx context.Context) ([]model.GalleryImage, error)
	FindByID(ctx context.Context, id int64) (model.GalleryImage, error)
	Create(ctx context.Context, g model.GalleryImage) (model.GalleryImage, error)
	Update(ctx context.Context, g model.GalleryImage) error
	Delete(ctx context.Context, id int64) error
}
