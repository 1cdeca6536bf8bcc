package usecase

import (
	"context"
	"net/http"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"
)

// OrderUsecase は会員の注文照会（自分の注文だけ見える）。
type OrderUsecase struct {
	purchaseRepo      repo.PurchaseRepository
	purchaseItemRepo  repo.PurchaseItemRepository
	paymentTxnRepo    repo.PaymentTransactionRepository
	paymentMethodRepo repo.PaymentMethodRepository
}

func NewOrderUsecase(
	purchaseRepo repo.PurchaseRepository,
	purchaseItemRepo repo.PurchaseItemRepository,
	paymentTxnRepo repo.PaymentTransactionRepository,
	paymentMethodRepo repo.PaymentMethodRepository,
) *OrderUsecase {
	return &OrderUsecase{
		purchaseRepo:      purchaseRepo,
		purchaseItemRepo:  purchaseItemRepo,
		paymentTxnRepo:    paymentTxnRepo,
		paymentMethodRepo: paymentMethodRepo,
	}
}

type OrderListOutput struct {
	Items []model.Purchase `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

type OrderDetailOutput struct {
	Purchase          model.Purchase            `json:"purchase"`
	Items             []model.PurchaseItem      `json:"items"`
	Payment           *model.PaymentTransaction `json:"payment,omitempty"`
	PaymentMethodName string                    `json:"payment_method_name,omitempty"`
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64, page int, limit int) (OrderListOutput, error) {
	if userID <= 0 {
		return OrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.purchaseRepo.ListByUserID(ctx, userID, page, limit)
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// 他人の注文は存在しない扱い（404）
func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, purchaseID int64) (OrderDetailOutput, error) {
	if userID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if purchaseID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.purchaseRepo.FindByID(ctx, purchaseID)
	if err == repo.ErrNotFound {
		return OrderDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if p.UserID != userID {
		return OrderDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	items, err := u.purchaseItemRepo.ListByPurchaseID(ctx, purchaseID)
	if err != nil {
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := OrderDetailOutput{Purchase: p, Items: items}

	//決済レコードは無いこともある
	txn, err := u.paymentTxnRepo.FindByPurchaseID(ctx, purchaseID)
	if err == nil {
		out.Payment = &txn

		//確認画面用に支払い方法名も添える
		m, err := u.paymentMethodRepo.FindByID(ctx, txn.PaymentMethodID)
		if err == nil {
			out.PaymentMethodName = m.Name
		} else if err != repo.ErrNotFound {
			return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	} else if err != repo.ErrNotFound {
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return out, nil
}
