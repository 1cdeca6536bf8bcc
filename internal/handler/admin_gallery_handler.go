package handler

import (
	"net/http"
	"strconv"

	"carparts/internal/config"
	"carparts/internal/middleware"
	"carparts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/gallery（STAFFも可）
type AdminGalleryHandler struct {
	uc *usecase.GalleryUsecase
}

// DI
func NewAdminGalleryHandler(uc *usecase.GalleryUsecase) *AdminGalleryHandler {
	return &AdminGalleryHandler{uc: uc}
}

func (h *AdminGalleryHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin/gallery")

	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.StaffRoleGuard())

	admin.GET("", h.list)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.remove)
}

func (h *AdminGalleryHandler) list(c echo.Context) error {
	items, err := h.uc.AdminList(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AdminGalleryHandler) create(c echo.Context) error {
	in, err := bindSaveGalleryInput(c)
	if err != nil {
		return writeError(c, err)
	}

	id, err := h.uc.AdminCreate(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

func (h *AdminGalleryHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	in, err := bindSaveGalleryInput(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.AdminUpdate(c.Request().Context(), id, in); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *AdminGalleryHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.AdminDelete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

// multipart/form-dataからAdminSaveGalleryInputを組み立てる。
func bindSaveGalleryInput(c echo.Context) (usecase.AdminSaveGalleryInput, error) {
	displayOrder := 0
	if v := c.FormValue("display_order"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return usecase.AdminSaveGalleryInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid display_order")
		}
		displayOrder = d
	}

	isActive := true
	if v := c.FormValue("is_active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return usecase.AdminSaveGalleryInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid is_active")
		}
		isActive = b
	}

	image, imageName, err := readFormImage(c, "image")
	if err != nil {
		return usecase.AdminSaveGalleryInput{}, err
	}

	return usecase.AdminSaveGalleryInput{
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		DisplayOrder: displayOrder,
		IsActive:     isActive,
		Image:        image,
		ImageName:    imageName,
	}, nil
}
