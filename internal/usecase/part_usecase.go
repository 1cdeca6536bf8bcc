package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"
	"carparts/internal/storage"

	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type PartUsecase struct {
	partRepo repo.PartRepository
	files    storage.FileStore
}

// DI
func NewPartUsecase(partRepo repo.PartRepository, files storage.FileStore) *PartUsecase {
	return &PartUsecase{
		partRepo: partRepo,
		files:    files,
	}
}

// GET /partsの入力DTO
type ListPartsInput struct {
	Page     int
	Limit    int
	Q        string
	Category string
	Brand    string
	Sort     string
}

type PartListOutput struct {
	Items []model.Part `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

func (u *PartUsecase) ListPublicParts(ctx context.Context, in ListPartsInput) (PartListOutput, error) {
	if in.Page < 1 {
		return PartListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return PartListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return PartListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	switch in.Sort {
	case "", "new", "price_asc", "price_desc":
	default:
		return PartListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.partRepo.ListPublic(ctx, repo.PartListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Q:        strings.TrimSpace(in.Q),
		Category: strings.TrimSpace(in.Category),
		Brand:    strings.TrimSpace(in.Brand),
		Sort:     in.Sort,
	})
	if err != nil {
		return PartListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return PartListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *PartUsecase) GetPartDetail(ctx context.Context, partID int64) (model.Part, error) {
	if partID <= 0 {
		return model.Part{}, NewHTTPError(http.StatusBadRequest, "invalid part id")
	}

	p, err := u.partRepo.FindByID(ctx, partID)
	if err == repo.ErrNotFound {
		return model.Part{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Part{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//非公開は存在しない扱い
	if !p.IsActive {
		return model.Part{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return p, nil
}

func (u *PartUsecase) AdminListParts(ctx context.Context, page int, limit int) (PartListOutput, error) {
	if page < 1 {
		return PartListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return PartListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.partRepo.ListAdmin(ctx, page, limit)
	if err != nil {
		return PartListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return PartListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

type AdminSavePartInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int64
	Category    string
	Brand       string
	IsActive    bool

	//任意の画像アップロード
	Image     []byte
	ImageName string
}

func (u *PartUsecase) AdminCreatePart(ctx context.Context, staffID int64, in AdminSavePartInput) (int64, error) {
	if staffID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price.IsNegative() {
		return 0, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock < 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	//画像は先に保存（レコード書き込みとは結合しない）
	imagePath := ""
	if len(in.Image) > 0 {
		path, err := u.files.Save(in.Image, in.ImageName, "parts")
		if err != nil {
			return 0, NewHTTPError(http.StatusInternalServerError, "file error")
		}
		imagePath = path
	}

	now := time.Now()
	p, err := u.partRepo.Create(ctx, model.Part{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    strings.TrimSpace(in.Category),
		Brand:       strings.TrimSpace(in.Brand),
		ImagePath:   imagePath,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p.ID, nil
}

// 楽観ロック。versionがずれた場合は、まだ存在すれば1回だけやり直す。
func (u *PartUsecase) AdminUpdatePart(ctx context.Context, staffID int64, partID int64, in AdminSavePartInput) error {
	if staffID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if partID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid part id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	cur, err := u.partRepo.FindByID(ctx, partID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//新しい画像があれば保存しておく
	imagePath := cur.ImagePath
	newImage := false
	if len(in.Image) > 0 {
		path, err := u.files.Save(in.Image, in.ImageName, "parts")
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "file error")
		}
		imagePath = path
		newImage = true
	}

	p := model.Part{
		ID:          partID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    strings.TrimSpace(in.Category),
		Brand:       strings.TrimSpace(in.Brand),
		ImagePath:   imagePath,
		IsActive:    in.IsActive,
		Version:     cur.Version,
	}

	err = u.partRepo.Update(ctx, p)
	if err == repo.ErrConflict {
		//まだ存在するならversionを取り直してもう一度
		latest, ferr := u.partRepo.FindByID(ctx, partID)
		if ferr == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if ferr != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		p.Version = latest.Version
		err = u.partRepo.Update(ctx, p)
		if err == repo.ErrConflict {
			return NewHTTPError(http.StatusConflict, "concurrency conflict")
		}
	}
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//差し替え後に旧画像を削除
	if newImage && cur.ImagePath != "" {
		_ = u.files.Delete(cur.ImagePath)
	}

	return nil
}

// 購入履歴のある部品は削除できない。カート行は連動して消える。
func (u *PartUsecase) AdminDeletePart(ctx context.Context, staffID int64, partID int64) error {
	if staffID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if partID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid part id")
	}

	cur, err := u.partRepo.FindByID(ctx, partID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	has, err := u.partRepo.HasPurchaseHistory(ctx, partID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if has {
		return NewHTTPError(http.StatusBadRequest, "part has purchase history")
	}

	if err := u.partRepo.Delete(ctx, partID); err != nil {
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
