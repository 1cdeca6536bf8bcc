package repository

import (
	"context"
	"errors"

	"carparts/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 楽観ロックのバージョン不一致
var ErrConflict = errors.New("conflict")

// 一覧検索
type PartListQuery struct {
	Page     int
	Limit    int
	Q        string
	Category string
	Brand    string
	Sort     string
}

// 部品の永続化（保存・取得）だけを約束。
type PartRepository interface {
	ListPublic(ctx context.Context, q PartListQuery) ([]model.Part, int64, error)
	ListAdmin(ctx context.Context, page int, limit int) ([]model.Part, int64, error)
	FindByID(ctx context.Context, id int64) (model.Part, error)

	Create(ctx context.Context, p model.Part) (model.Part, error)

	//versionが一致したときだけ更新（不一致は ErrConflict）
	Update(ctx context.Context, p model.Part) error

	//削除。参照しているカート行も同時に消す
	Delete(ctx context.Context, id int64) error

	//購入履歴のある部品は削除できない（restrict判定用）
	HasPurchaseHistory(ctx context.Context, partID int64) (bool, error)
}
