package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"
	"carparts/internal/storage"

	"github.com/shopspring/decimal"
)

// PromotionUsecase はキャンペーン情報の公開表示と管理CRUD。
type PromotionUsecase struct {
	promotionRepo repo.PromotionRepository
	files         storage.FileStore
}

func NewPromotionUsecase(promotionRepo repo.PromotionRepository, files storage.FileStore) *PromotionUsecase {
	return &PromotionUsecase{
		promotionRepo: promotionRepo,
		files:         files,
	}
}

type AdminSavePromotionInput struct {
	Title                 string
	Description           string
	DiscountPercentage    decimal.Decimal
	MinimumPurchaseAmount *decimal.Decimal
	StartDate             time.Time
	EndDate               time.Time
	IsActive              bool

	Image     []byte
	ImageName string
}

// 公開側：有効かつ今が期間内のものだけ
func (u *PromotionUsecase) ListCurrent(ctx context.Context) ([]model.Promotion, error) {
	items, err := u.promotionRepo.ListCurrent(ctx, time.Now())
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *PromotionUsecase) AdminList(ctx context.Context) ([]model.Promotion, error) {
	items, err := u.promotionRepo.ListAdmin(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *PromotionUsecase) AdminGet(ctx context.Context, id int64) (model.Promotion, error) {
	if id <= 0 {
		return model.Promotion{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, err := u.promotionRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Promotion{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Promotion{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *PromotionUsecase) AdminCreate(ctx context.Context, in AdminSavePromotionInput) (int64, error) {
	if err := validatePromotionInput(in); err != nil {
		return 0, err
	}

	imagePath := ""
	if len(in.Image) > 0 {
		path, err := u.files.Save(in.Image, in.ImageName, "promotions")
		if err != nil {
			return 0, NewHTTPError(http.StatusInternalServerError, "file error")
		}
		imagePath = path
	}

	p, err := u.promotionRepo.Create(ctx, model.Promotion{
		Title:                 strings.TrimSpace(in.Title),
		Description:           in.Description,
		DiscountPercentage:    in.DiscountPercentage,
		MinimumPurchaseAmount: in.MinimumPurchaseAmount,
		StartDate:             in.StartDate,
		EndDate:               in.EndDate,
		ImagePath:             imagePath,
		IsActive:              in.IsActive,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p.ID, nil
}

func (u *PromotionUsecase) AdminUpdate(ctx context.Context, id int64, in AdminSavePromotionInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validatePromotionInput(in); err != nil {
		return err
	}

	cur, err := u.promotionRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	imagePath := cur.ImagePath
	newImage := false
	if len(in.Image) > 0 {
		path, err := u.files.Save(in.Image, in.ImageName, "promotions")
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "file error")
		}
		imagePath = path
		newImage = true
	}

	err = u.promotionRepo.Update(ctx, model.Promotion{
		ID:                    id,
		Title:                 strings.TrimSpace(in.Title),
		Description:           in.Description,
		DiscountPercentage:    in.DiscountPercentage,
		MinimumPurchaseAmount: in.MinimumPurchaseAmount,
		StartDate:             in.StartDate,
		EndDate:               in.EndDate,
		ImagePath:             imagePath,
		IsActive:              in.IsActive,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if newImage && cur.ImagePath != "" {
		_ = u.files.Delete(cur.ImagePath)
	}
	return nil
}

func (u *PromotionUsecase) AdminDelete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	cur, err := u.promotionRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.promotionRepo.Delete(ctx, id); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if cur.ImagePath != "" {
		_ = u.files.Delete(cur.ImagePath)
	}
	return nil
}

func validatePromotionInput(in AdminSavePromotionInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return NewHTTPError(http.StatusBadRequest, "title required")
	}
	//割引率は0〜100
	if in.DiscountPercentage.IsNegative() || in.DiscountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return NewHTTPError(http.StatusBadRequest, "discount must be between 0 and 100")
	}
	if in.MinimumPurchaseAmount != nil && in.MinimumPurchaseAmount.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "minimum purchase amount must be >= 0")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return NewHTTPError(http.StatusBadRequest, "start and end date required")
	}
	if in.EndDate.Before(in.StartDate) {
		return NewHTTPError(http.StatusBadRequest, "end date before start date")
	}
	return nil
}
