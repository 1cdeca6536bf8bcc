package usecase_test

import (
	"context"
	"testing"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"
	"carparts/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCartUsecase_AddItem_PartNotAvailable_WhenMissing(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(PartRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	pRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Part{}, repo.ErrNotFound)

	_, err := uc.AddItem(context.Background(), 1, usecase.AddCartItemInput{PartID: 5, Quantity: 1})
	assertErrContains(t, err, "part not available")

	cRepo.AssertNotCalled(t, "UpsertByUserAndPart", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_AddItem_PartNotAvailable_WhenInactive(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(PartRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	pRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Part{ID: 5, IsActive: false, Stock: 10}, nil)

	_, err := uc.AddItem(context.Background(), 1, usecase.AddCartItemInput{PartID: 5, Quantity: 1})
	assertErrContains(t, err, "part not available")
}

// 同一部品の追加は加算後の合計数量で在庫チェック
func TestCartUsecase_AddItem_CombinedQuantityExceedsStock(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(PartRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	pRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Part{ID: 5, IsActive: true, Stock: 3}, nil)
	cRepo.On("FindByUserAndPart", mock.Anything, int64(1), int64(5)).
		Return(model.CartItem{ID: 7, UserID: 1, PartID: 5, Quantity: 2}, nil)

	_, err := uc.AddItem(context.Background(), 1, usecase.AddCartItemInput{PartID: 5, Quantity: 2})
	assertErrContains(t, err, "part not available")

	cRepo.AssertNotCalled(t, "UpsertByUserAndPart", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_AddItem_Success(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(PartRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	part := model.Part{ID: 5, Name: "Oil Filter", Price: decimal.NewFromInt(50), IsActive: true, Stock: 10}

	pRepo.On("FindByID", mock.Anything, int64(5)).Return(part, nil)
	cRepo.On("FindByUserAndPart", mock.Anything, int64(1), int64(5)).Return(model.CartItem{}, repo.ErrNotFound)
	cRepo.On("UpsertByUserAndPart", mock.Anything, int64(1), int64(5), int64(2)).Return(nil)
	cRepo.On("ListByUserID", mock.Anything, int64(1)).
		Return([]model.CartItem{{ID: 7, UserID: 1, PartID: 5, Quantity: 2}}, nil)

	out, err := uc.AddItem(context.Background(), 1, usecase.AddCartItemInput{PartID: 5, Quantity: 2})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(100)))

	cRepo.AssertExpectations(t)
}

func TestCartUsecase_UpdateQuantity_NotFound_WhenOtherUsersRow(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(PartRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	cRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.CartItem{ID: 7, UserID: 99, PartID: 5, Quantity: 1}, nil)

	_, err := uc.UpdateQuantity(context.Background(), 1, 7, usecase.UpdateCartItemInput{Quantity: 2})
	assertErrContains(t, err, "not found")
}

func TestCartUsecase_UpdateQuantity_InsufficientStock(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(PartRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	cRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.CartItem{ID: 7, UserID: 1, PartID: 5, Quantity: 1}, nil)
	pRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Part{ID: 5, IsActive: true, Stock: 3}, nil)

	_, err := uc.UpdateQuantity(context.Background(), 1, 7, usecase.UpdateCartItemInput{Quantity: 4})
	assertErrContains(t, err, "insufficient stock")

	cRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
}

// 数量0は行削除
func TestCartUsecase_UpdateQuantity_ZeroDeletesRow(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(PartRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	cRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.CartItem{ID: 7, UserID: 1, PartID: 5, Quantity: 2}, nil)
	cRepo.On("DeleteByID", mock.Anything, int64(7)).Return(nil)
	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	out, err := uc.UpdateQuantity(context.Background(), 1, 7, usecase.UpdateCartItemInput{Quantity: 0})
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Items))

	cRepo.AssertExpectations(t)
}

// 既に消えている行の削除は成功扱い
func TestCartUsecase_RemoveItem_IdempotentWhenMissing(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(PartRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	cRepo.On("FindByID", mock.Anything, int64(7)).Return(model.CartItem{}, repo.ErrNotFound)
	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	_, err := uc.RemoveItem(context.Background(), 1, 7)
	assert.NoError(t, err)

	cRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestCartUsecase_GetCart_SkipsInactiveParts(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(PartRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, PartID: 5, Quantity: 1},
		{ID: 2, UserID: 1, PartID: 6, Quantity: 1},
	}, nil)
	pRepo.On("FindByID", mock.Anything, int64(5)).
		Return(model.Part{ID: 5, Price: decimal.NewFromInt(30), IsActive: true, Stock: 1}, nil)
	pRepo.On("FindByID", mock.Anything, int64(6)).
		Return(model.Part{ID: 6, Price: decimal.NewFromInt(99), IsActive: false, Stock: 1}, nil)

	out, err := uc.GetCart(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(30)))
}

func TestCartUsecase_ClearCart(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(PartRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	cRepo.On("DeleteByUserID", mock.Anything, int64(1)).Return(nil)
	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	out, err := uc.ClearCart(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Items))

	cRepo.AssertExpectations(t)
}
