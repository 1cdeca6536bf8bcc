package repository

import (
	"context"
	"time"

	"carparts/internal/domain/model"
)

type AdminPurchaseListFilter struct {
	Page   int
	Limit  int
	Status string
	UserID *int64
	From   *time.Time
	To     *time.Time
}

type PurchaseRepository interface {
	FindByID(ctx context.Context, purchaseID int64) (model.Purchase, error)
	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Purchase, int64, error)
	Create(ctx context.Context, purchase model.Purchase) (int64, error)

	//現在statusがfromのときだけ更新（不一致は ErrConflict）。
	//CONFIRMED/COMPLETEDへの遷移時はタイムスタンプも併せて打つ
	UpdateStatus(ctx context.Context, purchaseID int64, from model.PurchaseStatus, to model.PurchaseStatus, confirmedAt *time.Time, completedAt *time.Time) error

	//管理者用の注文一覧
	ListAdmin(ctx context.Context, f AdminPurchaseListFilter) ([]model.Purchase, int64, error)
}
