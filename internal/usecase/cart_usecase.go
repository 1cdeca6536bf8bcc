package usecase

import (
	"context"
	"net/http"

	repo "carparts/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase は /cart の業務ロジックです。
// カートへの操作はカート行だけを変更し、在庫には触れない。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	partRepo     repo.PartRepository
}

func NewCartUsecase(
	cartItemRepo repo.CartItemRepository,
	partRepo repo.PartRepository,
) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		partRepo:     partRepo,
	}
}

type CartItemResponse struct {
	ID        int64           `json:"id"`
	PartID    int64           `json:"part_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	ImagePath string          `json:"image_path"`
}

type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Subtotal decimal.Decimal    `json:"subtotal"`
}

type AddCartItemInput struct {
	PartID   int64
	Quantity int64
}

type UpdateCartItemInput struct {
	Quantity int64
}

// GetCart はカート取得（空なら空のまま返す）。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	return u.buildCartResponse(ctx, userID)
}

// AddItem はカートに追加（同一部品は数量加算）。
// 加算後の合計数量が在庫を超えないことも確認する。
func (u *CartUsecase) AddItem(ctx context.Context, userID int64, in AddCartItemInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.PartID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid part_id")
	}
	if in.Quantity < 1 {
		in.Quantity = 1
	}

	//部品チェック（公開のみ）
	p, err := u.partRepo.FindByID(ctx, in.PartID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "part not available")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "part not available")
	}

	//既存数量を調べて、加算後が在庫を超えないか確認
	var existingQty int64 = 0
	existing, err := u.cartItemRepo.FindByUserAndPart(ctx, userID, in.PartID)
	if err == nil {
		existingQty = existing.Quantity
	} else if err != repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if existingQty+in.Quantity > p.Stock {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "part not available")
	}

	if err := u.cartItemRepo.UpsertByUserAndPart(ctx, userID, in.PartID, in.Quantity); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// 数量変更（所有チェック＋在庫チェック）。0以下は行削除。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, userID int64, cartItemID int64, in UpdateCartItemInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//他人の行は存在しない扱い
	if item.UserID != userID {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	//0以下は削除
	if in.Quantity <= 0 {
		if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil && err != repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return u.buildCartResponse(ctx, userID)
	}

	//在庫チェック
	p, err := u.partRepo.FindByID(ctx, item.PartID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "part not available")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if in.Quantity > p.Stock {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "insufficient stock")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, in.Quantity); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// 行削除（冪等：無ければ何もしない）
func (u *CartUsecase) RemoveItem(ctx context.Context, userID int64, cartItemID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if err == repo.ErrNotFound {
		//既に無いなら成功扱い
		return u.buildCartResponse(ctx, userID)
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//他人の行には触れない
	if item.UserID == userID {
		if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil && err != repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	return u.buildCartResponse(ctx, userID)
}

// カート全消し（冪等）
func (u *CartUsecase) ClearCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.cartItemRepo.DeleteByUserID(ctx, userID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// カート行と部品情報をまとめてCartResponseを作る。
func (u *CartUsecase) buildCartResponse(ctx context.Context, userID int64) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	subtotal := decimal.Zero

	for _, it := range items {
		p, err := u.partRepo.FindByID(ctx, it.PartID)
		if err != nil {
			continue
		}
		if !p.IsActive {
			continue
		}

		line := p.Price.Mul(decimal.NewFromInt(it.Quantity))

		respItems = append(respItems, CartItemResponse{
			ID:        it.ID,
			PartID:    it.PartID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  it.Quantity,
			Subtotal:  line,
			ImagePath: p.ImagePath,
		})

		subtotal = subtotal.Add(line)
	}

	return CartResponse{Items: respItems, Subtotal: subtotal}, nil
}
