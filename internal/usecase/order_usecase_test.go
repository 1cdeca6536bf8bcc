package usecase_test

import (
	"context"
	"testing"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"
	"carparts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderFixture() (*PurchaseRepoMock, *PurchaseItemRepoMock, *PaymentTxnRepoMock, *PaymentMethodRepoMock, *usecase.OrderUsecase) {
	puRepo := new(PurchaseRepoMock)
	piRepo := new(PurchaseItemRepoMock)
	ptRepo := new(PaymentTxnRepoMock)
	pmRepo := new(PaymentMethodRepoMock)
	uc := usecase.NewOrderUsecase(puRepo, piRepo, ptRepo, pmRepo)
	return puRepo, piRepo, ptRepo, pmRepo, uc
}

func TestOrderUsecase_ListMyOrders_Success(t *testing.T) {
	puRepo, _, _, _, uc := newOrderFixture()

	puRepo.On("ListByUserID", mock.Anything, int64(1), 1, 20).
		Return([]model.Purchase{{ID: 1, UserID: 1}}, int64(1), nil)

	out, err := uc.ListMyOrders(context.Background(), 1, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, 1, len(out.Items))
}

// 他人の注文は404
func TestOrderUsecase_GetMyOrderDetail_OtherUsersOrderIsHidden(t *testing.T) {
	puRepo, piRepo, _, _, uc := newOrderFixture()

	puRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.Purchase{ID: 7, UserID: 99}, nil)

	_, err := uc.GetMyOrderDetail(context.Background(), 1, 7)
	assertErrContains(t, err, "not found")

	piRepo.AssertNotCalled(t, "ListByPurchaseID", mock.Anything, mock.Anything)
}

func TestOrderUsecase_GetMyOrderDetail_Success(t *testing.T) {
	puRepo, piRepo, ptRepo, pmRepo, uc := newOrderFixture()

	puRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.Purchase{ID: 7, UserID: 1, Status: model.PurchaseStatusPending}, nil)
	piRepo.On("ListByPurchaseID", mock.Anything, int64(7)).
		Return([]model.PurchaseItem{{ID: 1, PurchaseID: 7, PartNameSnapshot: "Rotor"}}, nil)
	ptRepo.On("FindByPurchaseID", mock.Anything, int64(7)).
		Return(model.PaymentTransaction{ID: 2, PurchaseID: 7, PaymentMethodID: 3, TransactionReference: "TXN-7-20260115120000"}, nil)
	pmRepo.On("FindByID", mock.Anything, int64(3)).
		Return(model.PaymentMethod{ID: 3, Name: "Bank Transfer", IsActive: true}, nil)

	out, err := uc.GetMyOrderDetail(context.Background(), 1, 7)
	assert.NoError(t, err)
	assert.Equal(t, "Rotor", out.Items[0].PartNameSnapshot)
	assert.NotNil(t, out.Payment)
	assert.Equal(t, "Bank Transfer", out.PaymentMethodName)
}

// 決済レコードが無くても注文詳細は返す
func TestOrderUsecase_GetMyOrderDetail_NoPayment(t *testing.T) {
	puRepo, piRepo, ptRepo, pmRepo, uc := newOrderFixture()

	puRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.Purchase{ID: 7, UserID: 1}, nil)
	piRepo.On("ListByPurchaseID", mock.Anything, int64(7)).
		Return([]model.PurchaseItem{}, nil)
	ptRepo.On("FindByPurchaseID", mock.Anything, int64(7)).
		Return(model.PaymentTransaction{}, repo.ErrNotFound)

	out, err := uc.GetMyOrderDetail(context.Background(), 1, 7)
	assert.NoError(t, err)
	assert.Nil(t, out.Payment)
	assert.Equal(t, "", out.PaymentMethodName)

	pmRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
