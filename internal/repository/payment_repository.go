package repository

import (
	"context"
	"time"

	"carparts/internal/domain/model"
)

// 支払い方法はマスタデータ（参照のみ）
type PaymentMethodRepository interface {
	ListActive(ctx context.Context) ([]model.PaymentMethod, error)
	FindByID(ctx context.Context, id int64) (model.PaymentMethod, error)
}

type PaymentTransactionRepository interface {
	Create(ctx context.Context, txn model.PaymentTransaction) (int64, error)
	FindByPurchaseID(ctx context.Context, purchaseID int64) (model.PaymentTransaction, error)
	UpdateStatusByPurchaseID(ctx context.Context, purchaseID int64, status model.PaymentStatus, confirmedAt *time.Time) error
}
