package repository

import (
	"context"

	"carparts/internal/domain/model"
)

type PurchaseItemRepository interface {
	CreateBulk(ctx context.Context, purchaseID int64, items []model.PurchaseItem) error
	ListByPurchaseID(ctx context.Context, purchaseID int64) ([]model.PurchaseItem, error)
}
