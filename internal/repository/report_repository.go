package repository

import (
	"context"
	"time"

	"carparts/internal/domain/model"

	"github.com/shopspring/decimal"
)

type SalesSummary struct {
	TotalSales decimal.Decimal `json:"total_sales"`
	OrderCount int64           `json:"order_count"`
}

type PartSalesRow struct {
	PartID       int64           `json:"part_id"`
	PartName     string          `json:"part_name"`
	QuantitySold int64           `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

type StaffSalesRow struct {
	StaffID    int64           `json:"staff_id"`
	OrderCount int64           `json:"order_count"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// 集計はCOMPLETEDの注文のみを対象にする（読み取り専用）
type ReportRepository interface {
	ListCompleted(ctx context.Context, from time.Time, to time.Time) ([]model.Purchase, error)
	SalesSummary(ctx context.Context, from time.Time, to time.Time) (SalesSummary, error)
	TopParts(ctx context.Context, from time.Time, to time.Time, limit int) ([]PartSalesRow, error)
	StaffSales(ctx context.Context, from time.Time, to time.Time) ([]StaffSalesRow, error)
}
