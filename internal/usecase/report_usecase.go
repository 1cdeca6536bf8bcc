package usecase

import (
	"context"
	"net/http"
	"time"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"
)

// ReportUsecase は売上レポート（ADMINのみ）。COMPLETED注文だけが集計対象。
type ReportUsecase struct {
	reportRepo repo.ReportRepository
}

func NewReportUsecase(reportRepo repo.ReportRepository) *ReportUsecase {
	return &ReportUsecase{reportRepo: reportRepo}
}

type ReportPeriodInput struct {
	From time.Time
	To   time.Time
}

type SalesReportOutput struct {
	From    time.Time         `json:"from"`
	To      time.Time         `json:"to"`
	Summary repo.SalesSummary `json:"summary"`
	Orders  []model.Purchase  `json:"orders"`
}

type TopPartsOutput struct {
	From  time.Time           `json:"from"`
	To    time.Time           `json:"to"`
	Items []repo.PartSalesRow `json:"items"`
}

type StaffSalesOutput struct {
	From  time.Time            `json:"from"`
	To    time.Time            `json:"to"`
	Items []repo.StaffSalesRow `json:"items"`
}

// 期間は [from, to) の半開区間。未指定は当月。
func normalizePeriod(in ReportPeriodInput) (time.Time, time.Time, error) {
	from := in.From
	to := in.To

	if from.IsZero() && to.IsZero() {
		now := time.Now()
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = from.AddDate(0, 1, 0)
		return from, to, nil
	}
	if from.IsZero() || to.IsZero() {
		return time.Time{}, time.Time{}, NewHTTPError(http.StatusBadRequest, "from and to are required together")
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, NewHTTPError(http.StatusBadRequest, "to must be after from")
	}
	return from, to, nil
}

func (u *ReportUsecase) SalesReport(ctx context.Context, in ReportPeriodInput) (SalesReportOutput, error) {
	from, to, err := normalizePeriod(in)
	if err != nil {
		return SalesReportOutput{}, err
	}

	summary, err := u.reportRepo.SalesSummary(ctx, from, to)
	if err != nil {
		return SalesReportOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orders, err := u.reportRepo.ListCompleted(ctx, from, to)
	if err != nil {
		return SalesReportOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return SalesReportOutput{
		From:    from,
		To:      to,
		Summary: summary,
		Orders:  orders,
	}, nil
}

func (u *ReportUsecase) TopParts(ctx context.Context, in ReportPeriodInput, limit int) (TopPartsOutput, error) {
	from, to, err := normalizePeriod(in)
	if err != nil {
		return TopPartsOutput{}, err
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		return TopPartsOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, err := u.reportRepo.TopParts(ctx, from, to, limit)
	if err != nil {
		return TopPartsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return TopPartsOutput{From: from, To: to, Items: items}, nil
}

// 店頭販売の担当スタッフ別の売上
func (u *ReportUsecase) StaffSales(ctx context.Context, in ReportPeriodInput) (StaffSalesOutput, error) {
	from, to, err := normalizePeriod(in)
	if err != nil {
		return StaffSalesOutput{}, err
	}

	items, err := u.reportRepo.StaffSales(ctx, from, to)
	if err != nil {
		return StaffSalesOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return StaffSalesOutput{From: from, To: to, Items: items}, nil
}
