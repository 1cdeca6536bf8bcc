package usecase_test

import (
	"context"
	"testing"

	"carparts/internal/domain/model"
	"carparts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type GalleryRepoMock struct{ mock.Mock }

func (m *GalleryRepoMock) ListActive(ctx context.Context) ([]model.GalleryImage, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.GalleryImage)
	return items, args.Error(1)
}

func (m *GalleryRepoMock) ListAdmin(ctx context.Context) ([]model.GalleryImage, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.GalleryImage)
	return items, args.Error(1)
}

func (m *GalleryRepoMock) FindByID(ctx context.Context, id int64) (model.GalleryImage, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(model.GalleryImage)
	return g, args.Error(1)
}

func (m *GalleryRepoMock) Create(ctx context.Context, g model.GalleryImage) (model.GalleryImage, error) {
	args := m.Called(ctx, g)
	created, _ := args.Get(0).(model.GalleryImage)
	return created, args.Error(1)
}

func (m *GalleryRepoMock) Update(ctx context.Context, g model.GalleryImage) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *GalleryRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// 新規は画像必須
func TestGalleryUsecase_AdminCreate_ImageRequired(t *testing.T) {
	uc := usecase.NewGalleryUsecase(new(GalleryRepoMock), new(FileStoreMock))

	_, err := uc.AdminCreate(context.Background(), usecase.AdminSaveGalleryInput{Title: "Garage"})
	assertErrContains(t, err, "image required")
}

func TestGalleryUsecase_AdminCreate_Success(t *testing.T) {
	gRepo := new(GalleryRepoMock)
	files := new(FileStoreMock)
	uc := usecase.NewGalleryUsecase(gRepo, files)

	files.On("Save", []byte("img"), "g.jpg", "gallery").Return("gallery/abc_g.jpg", nil)
	gRepo.On("Create", mock.Anything, mock.MatchedBy(func(g model.GalleryImage) bool {
		return g.Title == "Garage" && g.ImagePath == "gallery/abc_g.jpg"
	})).Return(model.GalleryImage{ID: 4}, nil)

	id, err := uc.AdminCreate(context.Background(), usecase.AdminSaveGalleryInput{
		Title:     "Garage",
		IsActive:  true,
		Image:     []byte("img"),
		ImageName: "g.jpg",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(4), id)
}

func TestGalleryUsecase_AdminDelete_RemovesImage(t *testing.T) {
	gRepo := new(GalleryRepoMock)
	files := new(FileStoreMock)
	uc := usecase.NewGalleryUsecase(gRepo, files)

	gRepo.On("FindByID", mock.Anything, int64(4)).
		Return(model.GalleryImage{ID: 4, ImagePath: "gallery/a.jpg"}, nil)
	gRepo.On("Delete", mock.Anything, int64(4)).Return(nil)
	files.On("Delete", "gallery/a.jpg").Return(nil)

	err := uc.AdminDelete(context.Background(), 4)
	assert.NoError(t, err)

	files.AssertExpectations(t)
}

func TestGalleryUsecase_ListActive(t *testing.T) {
	gRepo := new(GalleryRepoMock)
	uc := usecase.NewGalleryUsecase(gRepo, new(FileStoreMock))

	gRepo.On("ListActive", mock.Anything).
		Return([]model.GalleryImage{{ID: 1, DisplayOrder: 0}, {ID: 2, DisplayOrder: 1}}, nil)

	items, err := uc.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, len(items))
}
