package handler

import (
	"net/http"

	"carparts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /promotions と /gallery の公開API（認証なし）
type ShowcaseHandler struct {
	promotions *usecase.PromotionUsecase
	gallery    *usecase.GalleryUsecase
}

// DI
func NewShowcaseHandler(promotions *usecase.PromotionUsecase, gallery *usecase.GalleryUsecase) *ShowcaseHandler {
	return &ShowcaseHandler{
		promotions: promotions,
		gallery:    gallery,
	}
}

func (h *ShowcaseHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/promotions", h.listPromotions)
	e.GET("/gallery", h.listGallery)
}

// 有効かつ期間内のキャンペーンのみ
func (h *ShowcaseHandler) listPromotions(c echo.Context) error {
	items, err := h.promotions.ListCurrent(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// 表示順どおり
func (h *ShowcaseHandler) listGallery(c echo.Context) error {
	items, err := h.gallery.ListActive(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
