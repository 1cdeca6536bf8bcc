package repository

import (
	"context"
	"errors"
	"time"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"

	"gorm.io/gorm"
)

type PaymentMethodGormRepository struct {
	db *gorm.DB
}

func NewPaymentMethodGormRepository(db *gorm.DB) *PaymentMethodGormRepository {
	return &PaymentMethodGormRepository{db: db}
}

// 有効な支払い方法のみ
func (r *PaymentMethodGormRepository) ListActive(ctx context.Context) ([]model.PaymentMethod, error) {
	var methods []model.PaymentMethod

	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id asc").
		Find(&methods).Error; err != nil {
		return []model.PaymentMethod{}, err
	}

	return methods, nil
}

func (r *PaymentMethodGormRepository) FindByID(ctx context.Context, id int64) (model.PaymentMethod, error) {
	var m model.PaymentMethod
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PaymentMethod{}, repo.ErrNotFound
	}
	if err != nil {
		return model.PaymentMethod{}, err
	}
	return m, nil
}

type PaymentTransactionGormRepository struct {
	db *gorm.DB
}

func NewPaymentTransactionGormRepository(db *gorm.DB) *PaymentTransactionGormRepository {
	return &PaymentTransactionGormRepository{db: db}
}

func (r *PaymentTransactionGormRepository) Create(ctx context.Context, txn model.PaymentTransaction) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&txn).Error; err != nil {
		return 0, err
	}
	return txn.ID, nil
}

func (r *PaymentTransactionGormRepository) FindByPurchaseID(ctx context.Context, purchaseID int64) (model.PaymentTransaction, error) {
	var t model.PaymentTransaction

	err := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Order("id desc").
		First(&t).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PaymentTransaction{}, repo.ErrNotFound
	}
	if err != nil {
		return model.PaymentTransaction{}, err
	}
	return t, nil
}

func (r *PaymentTransactionGormRepository) UpdateStatusByPurchaseID(ctx context.Context, purchaseID int64, status model.PaymentStatus, confirmedAt *time.Time) error {
	values := map[string]interface{}{
		"status": status,
	}
	if confirmedAt != nil {
		values["confirmed_at"] = *confirmedAt
	}

	res := r.db.WithContext(ctx).Model(&model.PaymentTransaction{}).
		Where("purchase_id = ?", purchaseID).
		Updates(values)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
