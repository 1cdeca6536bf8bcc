package repository

import (
	"context"

	"carparts/internal/domain/model"
)

type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	FindByUserAndPart(ctx context.Context, userID int64, partID int64) (model.CartItem, error)
	// 同一部品は数量加算
	UpsertByUserAndPart(ctx context.Context, userID int64, partID int64, addQty int64) error
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	// カート全消し（0件でもエラーにしない）
	DeleteByUserID(ctx context.Context, userID int64) error
}
