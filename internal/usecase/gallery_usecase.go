package usecase

import (
	"context"
	"net/http"
	"strings"

	"carparts/internal/domain/model"
	repo "carparts/internal/repository"
	"carparts/internal/storage"
)

// GalleryUsecase は施工事例ギャラリーの公開表示と管理CRUD。
type GalleryUsecase struct {
	galleryRepo repo.GalleryRepository
	files       storage.FileStore
}

func NewGalleryUsecase(galleryRepo repo.GalleryRepository, files storage.FileStore) *GalleryUsecase {
	return &GalleryUsecase{
		galleryRepo: galleryRepo,
		files:       files,
	}
}

type AdminSaveGalleryInput struct {
	Title        string
	Description  string
	DisplayOrder int
	IsActive     bool

	Image     []byte
	ImageName string
}

func (u *GalleryUsecase) ListActive(ctx context.Context) ([]model.GalleryImage, error) {
	items, err := u.galleryRepo.ListActive(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *GalleryUsecase) AdminList(ctx context.Context) ([]model.GalleryImage, error) {
	items, err := u.galleryRepo.ListAdmin(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// 新規登録は画像必須
func (u *GalleryUsecase) AdminCreate(ctx context.Context, in AdminSaveGalleryInput) (int64, error) {
	if strings.TrimSpace(in.Title) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "title required")
	}
	if len(in.Image) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "image required")
	}

	path, err := u.files.Save(in.Image, in.ImageName, "gallery")
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "file error")
	}

	g, err := u.galleryRepo.Create(ctx, model.GalleryImage{
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		ImagePath:    path,
		DisplayOrder: in.DisplayOrder,
		IsActive:     in.IsActive,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return g.ID, nil
}

func (u *GalleryUsecase) AdminUpdate(ctx context.Context, id int64, in AdminSaveGalleryInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Title) == "" {
		return NewHTTPError(http.StatusBadRequest, "title required")
	}

	cur, err := u.galleryRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	imagePath := cur.ImagePath
	newImage := false
	if len(in.Image) > 0 {
		path, err := u.files.Save(in.Image, in.ImageName, "gallery")
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "file error")
		}
		imagePath = path
		newImage = true
	}

	err = u.galleryRepo.Update(ctx, model.GalleryImage{
		ID:           id,
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		ImagePath:    imagePath,
		DisplayOrder: in.DisplayOrder,
		IsActive:     in.IsActive,
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

func (u *GalleryUsecase) AdminDelete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	cur, err := u.galleryRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.galleryRepo.Delete(ctx, id); err != nil {
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
