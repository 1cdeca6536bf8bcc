package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

// 消費税7%
var taxRate = decimal.NewFromFloat(0.07)

// CheckoutUsecase はカートから注文への変換を担当。
// 在庫減算・注文作成・決済トランザクション作成・カート削除を1つのTxで行う。
type CheckoutUsecase struct {
	cartItemRepo      repo.CartItemRepository
	partRepo          repo.PartRepository
	paymentMethodRepo repo.PaymentMethodRepository
	txManager         repo.TransactionManager
}

func NewCheckoutUsecase(
	cartItemRepo repo.CartItemRepository,
	partRepo repo.PartRepository,
	paymentMethodRepo repo.PaymentMethodRepository,
	txManager repo.TransactionManager,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cartItemRepo:      cartItemRepo,
		partRepo:          partRepo,
		paymentMethodRepo: paymentMethodRepo,
		txManager:         txManager,
	}
}

type CheckoutInput struct {
	PaymentMethodID int64  `json:"payment_method_id" validate:"required,gt=0"`
	Notes           string `json:"notes" validate:"max=500"`
}

type CheckoutLine struct {
	PartID    int64           `json:"part_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// チェックアウト前の確認画面用
type CheckoutPreview struct {
	Items          []CheckoutLine        `json:"items"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	Tax            decimal.Decimal       `json:"tax"`
	Total          decimal.Decimal       `json:"total"`
	PaymentMethods []model.PaymentMethod `json:"payment_methods"`
}

type CheckoutResult struct {
	PurchaseID           int64           `json:"purchase_id"`
	TransactionReference string          `json:"transaction_reference"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	Tax                  decimal.Decimal `json:"tax"`
	Total                decimal.Decimal `json:"total"`
	Status               string          `json:"status"`
}

// Preview はカートの現在内容から金額を再計算して返す（書き込みなし）。
// 買えない部品（非公開・在庫不足）が混ざっていたら確認画面は出さない。
func (u *CheckoutUsecase) Preview(ctx context.Context, userID int64) (CheckoutPreview, error) {
	if userID <= 0 {
		return CheckoutPreview{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	lines, subtotal, err := u.priceCart(ctx, userID)
	if err != nil {
		return CheckoutPreview{}, err
	}
	if len(lines) == 0 {
		return CheckoutPreview{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	methods, err := u.paymentMethodRepo.ListActive(ctx)
	if err != nil {
		return CheckoutPreview{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	tax := subtotal.Mul(taxRate).Round(2)
	return CheckoutPreview{
		Items:          lines,
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          subtotal.Add(tax),
		PaymentMethods: methods,
	}, nil
}

// Checkout は注文を確定します。
// 税は小計の7%（小数2桁丸め）。価格はカート時点ではなく確定時点のPart価格。
func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64, in CheckoutInput) (CheckoutResult, error) {
	if userID <= 0 {
		return CheckoutResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//支払い方法チェック
	method, err := u.paymentMethodRepo.FindByID(ctx, in.PaymentMethodID)
	if err == repo.ErrNotFound {
		return CheckoutResult{}, NewHTTPError(http.StatusBadRequest, "invalid payment method")
	}
	if err != nil {
		return CheckoutResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !method.IsActive {
		return CheckoutResult{}, NewHTTPError(http.StatusBadRequest, "invalid payment method")
	}

	//Tx前に一度カートを検証しておく（空カート・非公開部品の早期検出）
	cartItems, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CheckoutResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(cartItems) == 0 {
		return CheckoutResult{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	var result CheckoutResult

	err = u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		//Tx内でカートを取り直す
		items, err := r.CartItems().ListByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}

		now := time.Now()
		subtotal := decimal.Zero
		purchaseItems := make([]model.PurchaseItem, 0, len(items))

		for _, it := range items {
			p, err := r.Parts().FindByID(ctx, it.PartID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("part not available: id %d", it.PartID))
			}
			if err != nil {
				return err
			}
			if !p.IsActive {
				return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("part not available: %s", p.Name))
			}

			//条件付きUPDATEで在庫を減らす。効かなければ在庫不足。
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.PartID, it.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				//非公開も在庫切れも購入者には同じ「買えない部品」
				return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("part not available: %s", p.Name))
			}

			line := p.Price.Mul(decimal.NewFromInt(it.Quantity))
			subtotal = subtotal.Add(line)

			purchaseItems = append(purchaseItems, model.PurchaseItem{
				PartID:           p.ID,
				PartNameSnapshot: p.Name,
				Quantity:         it.Quantity,
				UnitPrice:        p.Price,
				Subtotal:         line,
			})
		}

		tax := subtotal.Mul(taxRate).Round(2)
		total := subtotal.Add(tax)

		purchaseID, err := r.Purchases().Create(ctx, model.Purchase{
			UserID:         userID,
			PurchaseDate:   now,
			TotalAmount:    total,
			DiscountAmount: decimal.Zero,
			Status:         model.PurchaseStatusPending,
			Notes:          in.Notes,
		})
		if err != nil {
			return err
		}

		if err := r.PurchaseItems().CreateBulk(ctx, purchaseID, purchaseItems); err != nil {
			return err
		}

		ref := fmt.Sprintf("TXN-%d-%s", purchaseID, now.Format("20060102150405"))
		if _, err := r.PaymentTransactions().Create(ctx, model.PaymentTransaction{
			PurchaseID:           purchaseID,
			PaymentMethodID:      method.ID,
			UserID:               userID,
			Amount:               total,
			TransactionDate:      now,
			Status:               model.PaymentStatusPending,
			TransactionReference: ref,
		}); err != nil {
			return err
		}

		//カートは注文に引き継いだので空にする
		if err := r.CartItems().DeleteByUserID(ctx, userID); err != nil {
			return err
		}

		result = CheckoutResult{
			PurchaseID:           purchaseID,
			TransactionReference: ref,
			Subtotal:             subtotal,
			Tax:                  tax,
			Total:                total,
			Status:               string(model.PurchaseStatusPending),
		}
		return nil
	})
	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return CheckoutResult{}, he
		}
		//原因はログに残し、クライアントには一般化したメッセージを返す
		log.Errorf("checkout failed: user=%d err=%v", userID, err)
		return CheckoutResult{}, NewHTTPError(http.StatusInternalServerError, "checkout failed")
	}

	return result, nil
}

// カート行を現在のPart価格で明細化する（読み取りのみ）。
// Checkoutと同じ基準で検証する：消えた・非公開・在庫不足の部品があればエラー。
func (u *CheckoutUsecase) priceCart(ctx context.Context, userID int64) ([]CheckoutLine, decimal.Decimal, error) {
	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	lines := make([]CheckoutLine, 0, len(items))
	subtotal := decimal.Zero

	for _, it := range items {
		p, err := u.partRepo.FindByID(ctx, it.PartID)
		if err == repo.ErrNotFound {
			return nil, decimal.Zero, NewHTTPError(http.StatusBadRequest, fmt.Sprintf("part not available: id %d", it.PartID))
		}
		if err != nil {
			return nil, decimal.Zero, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !p.IsActive {
			return nil, decimal.Zero, NewHTTPError(http.StatusBadRequest, fmt.Sprintf("part not available: %s", p.Name))
		}
		if it.Quantity > p.Stock {
			return nil, decimal.Zero, NewHTTPError(http.StatusBadRequest, fmt.Sprintf("part not available: %s", p.Name))
		}

		line := p.Price.Mul(decimal.NewFromInt(it.Quantity))
		lines = append(lines, CheckoutLine{
			PartID:    p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  it.Quantity,
			Subtotal:  line,
		})
		subtotal = subtotal.Add(line)
	}

	return lines, subtotal, nil
}
