package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"

	"github.com/stretchr/testify/mock"
)

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error containing %q, got %q", want, err.Error())
	}
}

// =====================
// Mocks
// =====================

type PartRepoMock struct{ mock.Mock }

func (m *PartRepoMock) ListPublic(ctx context.Context, q repo.PartListQuery) ([]model.Part, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Part)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *PartRepoMock) ListAdmin(ctx context.Context, page int, limit int) ([]model.Part, int64, error) {
	args := m.Called(ctx, page, limit)
	items, _ := args.Get(0).([]model.Part)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *PartRepoMock) FindByID(ctx context.Context, id int64) (model.Part, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Part)
	return p, args.Error(1)
}

func (m *PartRepoMock) Create(ctx context.Context, p model.Part) (model.Part, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Part)
	return created, args.Error(1)
}

func (m *PartRepoMock) Update(ctx context.Context, p model.Part) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PartRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PartRepoMock) HasPurchaseHistory(ctx context.Context, partID int64) (bool, error) {
	args := m.Called(ctx, partID)
	return args.Bool(0), args.Error(1)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID)
	it, _ := args.Get(0).(model.CartItem)
	return it, args.Error(1)
}

func (m *CartItemRepoMock) FindByUserAndPart(ctx context.Context, userID int64, partID int64) (model.CartItem, error) {
	args := m.Called(ctx, userID, partID)
	it, _ := args.Get(0).(model.CartItem)
	return it, args.Error(1)
}

func (m *CartItemRepoMock) UpsertByUserAndPart(ctx context.Context, userID int64, partID int64, addQty int64) error {
	args := m.Called(ctx, userID, partID, addQty)
	return args.Error(0)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, partID int64, qty int64) (bool, error) {
	args := m.Called(ctx, partID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *InventoryRepoMock) IncreaseStock(ctx context.Context, partID int64, qty int64) error {
	args := m.Called(ctx, partID, qty)
	return args.Error(0)
}

type PurchaseRepoMock struct{ mock.Mock }

func (m *PurchaseRepoMock) FindByID(ctx context.Context, purchaseID int64) (model.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	p, _ := args.Get(0).(model.Purchase)
	return p, args.Error(1)
}

func (m *PurchaseRepoMock) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Purchase, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	items, _ := args.Get(0).([]model.Purchase)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *PurchaseRepoMock) Create(ctx context.Context, purchase model.Purchase) (int64, error) {
	args := m.Called(ctx, purchase)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PurchaseRepoMock) UpdateStatus(ctx context.Context, purchaseID int64, from model.PurchaseStatus, to model.PurchaseStatus, confirmedAt *time.Time, completedAt *time.Time) error {
	args := m.Called(ctx, purchaseID, from, to, confirmedAt, completedAt)
	return args.Error(0)
}

func (m *PurchaseRepoMock) ListAdmin(ctx context.Context, f repo.AdminPurchaseListFilter) ([]model.Purchase, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Purchase)
	return items, args.Get(1).(int64), args.Error(2)
}

type PurchaseItemRepoMock struct{ mock.Mock }

func (m *PurchaseItemRepoMock) CreateBulk(ctx context.Context, purchaseID int64, items []model.PurchaseItem) error {
	args := m.Called(ctx, purchaseID, items)
	return args.Error(0)
}

func (m *PurchaseItemRepoMock) ListByPurchaseID(ctx context.Context, purchaseID int64) ([]model.PurchaseItem, error) {
	args := m.Called(ctx, purchaseID)
	items, _ := args.Get(0).([]model.PurchaseItem)
	return items, args.Error(1)
}

type PaymentMethodRepoMock struct{ mock.Mock }

func (m *PaymentMethodRepoMock) ListActive(ctx context.Context) ([]model.PaymentMethod, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.PaymentMethod)
	return items, args.Error(1)
}

func (m *PaymentMethodRepoMock) FindByID(ctx context.Context, id int64) (model.PaymentMethod, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.PaymentMethod)
	return p, args.Error(1)
}

type PaymentTxnRepoMock struct{ mock.Mock }

func (m *PaymentTxnRepoMock) Create(ctx context.Context, txn model.PaymentTransaction) (int64, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PaymentTxnRepoMock) FindByPurchaseID(ctx context.Context, purchaseID int64) (model.PaymentTransaction, error) {
	args := m.Called(ctx, purchaseID)
	txn, _ := args.Get(0).(model.PaymentTransaction)
	return txn, args.Error(1)
}

func (m *PaymentTxnRepoMock) UpdateStatusByPurchaseID(ctx context.Context, purchaseID int64, status model.PaymentStatus, confirmedAt *time.Time) error {
	args := m.Called(ctx, purchaseID, status, confirmedAt)
	return args.Error(0)
}

type FileStoreMock struct{ mock.Mock }

func (m *FileStoreMock) Save(data []byte, originalName string, category string) (string, error) {
	args := m.Called(data, originalName, category)
	return args.String(0), args.Error(1)
}

func (m *FileStoreMock) Delete(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

// =====================
// TxManagerのスタブ（固定のreposでfnを実行するだけ）
// =====================

type txReposStub struct {
	purchases     *PurchaseRepoMock
	purchaseItems *PurchaseItemRepoMock
	cartItems     *CartItemRepoMock
	parts         *PartRepoMock
	inventory     *InventoryRepoMock
	methods       *PaymentMethodRepoMock
	paymentTxns   *PaymentTxnRepoMock
}

func (s *txReposStub) Purchases() repo.PurchaseRepository           { return s.purchases }
func (s *txReposStub) PurchaseItems() repo.PurchaseItemRepository   { return s.purchaseItems }
func (s *txReposStub) CartItems() repo.CartItemRepository           { return s.cartItems }
func (s *txReposStub) Parts() repo.PartRepository                   { return s.parts }
func (s *txReposStub) Inventory() repo.InventoryRepository          { return s.inventory }
func (s *txReposStub) PaymentMethods() repo.PaymentMethodRepository { return s.methods }
func (s *txReposStub) PaymentTransactions() repo.PaymentTransactionRepository {
	return s.paymentTxns
}

type TxManagerStub struct {
	repos *txReposStub
}

func (m *TxManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}
