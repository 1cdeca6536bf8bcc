package usecase_test

import (
	"context"
	"testing"
	"time"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"
	"carparts/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ReportRepoMock struct{ mock.Mock }

func (m *ReportRepoMock) ListCompleted(ctx context.Context, from time.Time, to time.Time) ([]model.Purchase, error) {
	args := m.Called(ctx, from, to)
	items, _ := args.Get(0).([]model.Purchase)
	return items, args.Error(1)
}

func (m *ReportRepoMock) SalesSummary(ctx context.Context, from time.Time, to time.Time) (repo.SalesSummary, error) {
	args := m.Called(ctx, from, to)
	s, _ := args.Get(0).(repo.SalesSummary)
	return s, args.Error(1)
}

func (m *ReportRepoMock) TopParts(ctx context.Context, from time.Time, to time.Time, limit int) ([]repo.PartSalesRow, error) {
	args := m.Called(ctx, from, to, limit)
	rows, _ := args.Get(0).([]repo.PartSalesRow)
	return rows, args.Error(1)
}

func (m *ReportRepoMock) StaffSales(ctx context.Context, from time.Time, to time.Time) ([]repo.StaffSalesRow, error) {
	args := m.Called(ctx, from, to)
	rows, _ := args.Get(0).([]repo.StaffSalesRow)
	return rows, args.Error(1)
}

func TestReportUsecase_SalesReport_ToBeforeFrom(t *testing.T) {
	uc := usecase.NewReportUsecase(new(ReportRepoMock))

	_, err := uc.SalesReport(context.Background(), usecase.ReportPeriodInput{
		From: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	assertErrContains(t, err, "to must be after from")
}

func TestReportUsecase_SalesReport_RequiresBothBounds(t *testing.T) {
	uc := usecase.NewReportUsecase(new(ReportRepoMock))

	_, err := uc.SalesReport(context.Background(), usecase.ReportPeriodInput{
		From: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	assertErrContains(t, err, "from and to are required together")
}

func TestReportUsecase_SalesReport_Success(t *testing.T) {
	rRepo := new(ReportRepoMock)
	uc := usecase.NewReportUsecase(rRepo)

	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	rRepo.On("SalesSummary", mock.Anything, from, to).
		Return(repo.SalesSummary{TotalSales: decimal.RequireFromString("1070.00"), OrderCount: 4}, nil)
	rRepo.On("ListCompleted", mock.Anything, from, to).
		Return([]model.Purchase{{ID: 1, Status: model.PurchaseStatusCompleted}}, nil)

	out, err := uc.SalesReport(context.Background(), usecase.ReportPeriodInput{From: from, To: to})
	assert.NoError(t, err)
	assert.Equal(t, int64(4), out.Summary.OrderCount)
	assert.Equal(t, 1, len(out.Orders))

	rRepo.AssertExpectations(t)
}

func TestReportUsecase_StaffSales_Success(t *testing.T) {
	rRepo := new(ReportRepoMock)
	uc := usecase.NewReportUsecase(rRepo)

	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	rRepo.On("StaffSales", mock.Anything, from, to).
		Return([]repo.StaffSalesRow{{StaffID: 2, OrderCount: 1, TotalSales: decimal.NewFromInt(300)}}, nil)

	out, err := uc.StaffSales(context.Background(), usecase.ReportPeriodInput{From: from, To: to})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, int64(2), out.Items[0].StaffID)

	rRepo.AssertExpectations(t)
}

// 期間未指定は当月分で集計する
func TestReportUsecase_TopParts_DefaultsToCurrentMonth(t *testing.T) {
	rRepo := new(ReportRepoMock)
	uc := usecase.NewReportUsecase(rRepo)

	rRepo.On("TopParts", mock.Anything,
		mock.MatchedBy(func(from time.Time) bool { return from.Day() == 1 }),
		mock.MatchedBy(func(to time.Time) bool { return to.Day() == 1 }),
		10,
	).Return([]repo.PartSalesRow{{PartID: 5, PartName: "Rotor", QuantitySold: 7}}, nil)

	out, err := uc.TopParts(context.Background(), usecase.ReportPeriodInput{}, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, "Rotor", out.Items[0].PartName)

	rRepo.AssertExpectations(t)
}
