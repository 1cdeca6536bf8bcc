package usecase

import (
	"context"
	"net/http"
	"time"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"

	"github.com/labstack/gommon/log"
)

// AdminOrderUsecase は管理画面の注文管理。
// ステータス遷移は在庫・決済の更新と同じTxで行う。
type AdminOrderUsecase struct {
	purchaseRepo     repo.PurchaseRepository
	purchaseItemRepo repo.PurchaseItemRepository
	paymentTxnRepo   repo.PaymentTransactionRepository
	txManager        repo.TransactionManager
}

func NewAdminOrderUsecase(
	purchaseRepo repo.PurchaseRepository,
	purchaseItemRepo repo.PurchaseItemRepository,
	paymentTxnRepo repo.PaymentTransactionRepository,
	txManager repo.TransactionManager,
) *AdminOrderUsecase {
	return &AdminOrderUsecase{
		purchaseRepo:     purchaseRepo,
		purchaseItemRepo: purchaseItemRepo,
		paymentTxnRepo:   paymentTxnRepo,
		txManager:        txManager,
	}
}

type AdminOrderListInput struct {
	Page   int
	Limit  int
	Status string
	UserID *int64
	From   *time.Time
	To     *time.Time
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// 許可される遷移だけtrue。同じステータスへの遷移はno-opとして別扱い。
func canTransition(from model.PurchaseStatus, to model.PurchaseStatus) bool {
	switch from {
	case model.PurchaseStatusPending:
		return to == model.PurchaseStatusConfirmed || to == model.PurchaseStatusCancelled
	case model.PurchaseStatusConfirmed:
		return to == model.PurchaseStatusCompleted || to == model.PurchaseStatusCancelled
	default:
		//CANCELLED/COMPLETEDは終端
		return false
	}
}

func (u *AdminOrderUsecase) ListOrders(ctx context.Context, in AdminOrderListInput) (OrderListOutput, error) {
	if in.Page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	switch in.Status {
	case "", string(model.PurchaseStatusPending), string(model.PurchaseStatusConfirmed),
		string(model.PurchaseStatusCancelled), string(model.PurchaseStatusCompleted):
	default:
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	items, total, err := u.purchaseRepo.ListAdmin(ctx, repo.AdminPurchaseListFilter{
		Page:   in.Page,
		Limit:  in.Limit,
		Status: in.Status,
		UserID: in.UserID,
		From:   in.From,
		To:     in.To,
	})
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *AdminOrderUsecase) GetOrderDetail(ctx context.Context, purchaseID int64) (OrderDetailOutput, error) {
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

	items, err := u.purchaseItemRepo.ListByPurchaseID(ctx, purchaseID)
	if err != nil {
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := OrderDetailOutput{Purchase: p, Items: items}

	txn, err := u.paymentTxnRepo.FindByPurchaseID(ctx, purchaseID)
	if err == nil {
		out.Payment = &txn
	} else if err != repo.ErrNotFound {
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return out, nil
}

// UpdateStatus はステータス遷移を実行します。
//   - CONFIRMED: confirmed_atを打ち、決済もCONFIRMEDにする
//   - COMPLETED: completed_atを打つ
//   - CANCELLED: 明細分の在庫を戻し、決済をFAILEDにする
//
// 同じステータスへの変更はno-op（200）。許可外の遷移は400。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, purchaseID int64, in UpdateOrderStatusInput) error {
	if purchaseID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	to := model.PurchaseStatus(in.Status)
	switch to {
	case model.PurchaseStatusPending, model.PurchaseStatusConfirmed,
		model.PurchaseStatusCancelled, model.PurchaseStatusCompleted:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	cur, err := u.purchaseRepo.FindByID(ctx, purchaseID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if cur.Status == to {
		return nil
	}
	if !canTransition(cur.Status, to) {
		return NewHTTPError(http.StatusBadRequest, "invalid status transition")
	}

	err = u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		now := time.Now()

		switch to {
		case model.PurchaseStatusConfirmed:
			if err := r.Purchases().UpdateStatus(ctx, purchaseID, cur.Status, to, &now, nil); err != nil {
				return err
			}
			if err := r.PaymentTransactions().UpdateStatusByPurchaseID(ctx, purchaseID, model.PaymentStatusConfirmed, &now); err != nil && err != repo.ErrNotFound {
				return err
			}

		case model.PurchaseStatusCompleted:
			if err := r.Purchases().UpdateStatus(ctx, purchaseID, cur.Status, to, nil, &now); err != nil {
				return err
			}

		case model.PurchaseStatusCancelled:
			//先に条件付きUPDATEで遷移を確定させる。
			//並行するキャンセルは片方がErrConflictになり、在庫を二重に戻さない。
			if err := r.Purchases().UpdateStatus(ctx, purchaseID, cur.Status, to, nil, nil); err != nil {
				return err
			}

			//在庫戻し（キャンセル）
			items, err := r.PurchaseItems().ListByPurchaseID(ctx, purchaseID)
			if err != nil {
				return err
			}
			for _, it := range items {
				if err := r.Inventory().IncreaseStock(ctx, it.PartID, it.Quantity); err != nil {
					return err
				}
			}
			if err := r.PaymentTransactions().UpdateStatusByPurchaseID(ctx, purchaseID, model.PaymentStatusFailed, nil); err != nil && err != repo.ErrNotFound {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if err == repo.ErrConflict {
			//別のリクエストが先にステータスを変えた
			return NewHTTPError(http.StatusConflict, "concurrency conflict")
		}
		if he, ok := AsHTTPError(err); ok {
			return he
		}
		log.Errorf("order status update failed: purchase=%d to=%s err=%v", purchaseID, to, err)
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}
