package repository

import (
	"context"
	"time"

	"carparts/internal/domain/model"
)

type PromotionRepository interface {
	//公開側：有効かつ期間内のもの
	ListCurrent(ctx context.Context, now time.Time) ([]model.Promotion, error)
	ListAdmin(ctx context.Context) ([]model.Promotion, error)
	FindByID(ctx context.Context, id int64) (model.Promotion, error)
	Create(ctx context.Context, p model.Promotion) (model.Promotion, error)
	Update(ctx context.Context, p model.Promotion) error
	Delete(ctx context.Context, id int64) error
}
