package repository

import (
	"context"
	"time"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"

	"gorm.io/gorm"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

// 期間内のCOMPLETED注文を新しい順で
func (r *ReportGormRepository) ListCompleted(ctx context.Context, from time.Time, to time.Time) ([]model.Purchase, error) {
	var purchases []model.Purchase

	err := r.db.WithContext(ctx).
		Where("status = ?", model.PurchaseStatusCompleted).
		Where("purchase_date >= ? AND purchase_date < ?", from, to).
		Order("purchase_date desc").
		Find(&purchases).Error
	if err != nil {
		return []model.Purchase{}, err
	}

	return purchases, nil
}

// 売上合計と件数
func (r *ReportGormRepository) SalesSummary(ctx context.Context, from time.Time, to time.Time) (repo.SalesSummary, error) {
	var s repo.SalesSummary

	err := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Select("COALESCE(SUM(total_amount), 0) AS total_sales, COUNT(*) AS order_count").
		Where("status = ?", model.PurchaseStatusCompleted).
		Where("purchase_date >= ? AND purchase_date < ?", from, to).
		Scan(&s).Error
	if err != nil {
		return repo.SalesSummary{}, err
	}

	return s, nil
}

// 部品別の販売数量・売上（売上降順）
func (r *ReportGormRepository) TopParts(ctx context.Context, from time.Time, to time.Time, limit int) ([]repo.PartSalesRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	var rows []repo.PartSalesRow

	err := r.db.WithContext(ctx).
		Table("purchase_items").
		Select("purchase_items.part_id AS part_id, purchase_items.part_name_snapshot AS part_name, SUM(purchase_items.quantity) AS quantity_sold, SUM(purchase_items.subtotal) AS revenue").
		Joins("JOIN purchases ON purchases.id = purchase_items.purchase_id").
		Where("purchases.status = ?", model.PurchaseStatusCompleted).
		Where("purchases.purchase_date >= ? AND purchases.purchase_date < ?", from, to).
		Group("purchase_items.part_id, purchase_items.part_name_snapshot").
		Order("revenue desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return []repo.PartSalesRow{}, err
	}

	return rows, nil
}

// スタッフ別売上（店頭販売のみ：staff_idがある注文）
func (r *ReportGormRepository) StaffSales(ctx context.Context, from time.Time, to time.Time) ([]repo.StaffSalesRow, error) {
	var rows []repo.StaffSalesRow

	err := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Select("staff_id AS staff_id, COUNT(*) AS order_count, SUM(total_amount) AS total_sales").
		Where("status = ?", model.PurchaseStatusCompleted).
		Where("staff_id IS NOT NULL").
		Where("purchase_date >= ? AND purchase_date < ?", from, to).
		Group("staff_id").
		Order("total_sales desc").
		Scan(&rows).Error
	if err != nil {
		return []repo.StaffSalesRow{}, err
	}

	return rows, nil
}
