package repository

import (
	"context"

	repo "carparts/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	purchases     repo.PurchaseRepository
	purchaseItems repo.PurchaseItemRepository
	cartItems     repo.CartItemRepository
	parts         repo.PartRepository
	inventory     repo.InventoryRepository
	methods       repo.PaymentMethodRepository
	transactions  repo.PaymentTransactionRepository
}

func (r *txReposGorm) Purchases() repo.PurchaseRepository           { return r.purchases }
func (r *txReposGorm) PurchaseItems() repo.PurchaseItemRepository   { return r.purchaseItems }
func (r *txReposGorm) CartItems() repo.CartItemRepository           { return r.cartItems }
func (r *txReposGorm) Parts() repo.PartRepository                   { return r.parts }
func (r *txReposGorm) Inventory() repo.InventoryRepository          { return r.inventory }
func (r *txReposGorm) PaymentMethods() repo.PaymentMethodRepository { return r.methods }
func (r *txReposGorm) PaymentTransactions() repo.PaymentTransactionRepository {
	return r.transactions
}

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			purchases:     NewPurchaseGormRepository(tx),
			purchaseItems: NewPurchaseItemGormRepository(tx),
			cartItems:     NewCartItemGormRepository(tx),
			parts:         NewPartGormRepository(tx),
			inventory:     NewInventoryGormRepository(tx),
			methods:       NewPaymentMethodGormRepository(tx),
			transactions:  NewPaymentTransactionGormRepository(tx),
		}
		return fn(r)
	})
}
