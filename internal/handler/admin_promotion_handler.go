package handler

import (
	"net/http"
	"strconv"
	"time"

	"carparts/internal/config"
	"carparts/internal/middleware"
	"carparts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /admin/promotions（STAFFも可）
type AdminPromotionHandler struct {
	uc *usecase.PromotionUsecase
}

// DI
func NewAdminPromotionHandler(uc *usecase.PromotionUsecase) *AdminPromotionHandler {
	return &AdminPromotionHandler{uc: uc}
}

func (h *AdminPromotionHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin/promotions")

	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.StaffRoleGuard())

	admin.GET("", h.list)
	admin.GET("/:id", h.detail)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.remove)
}

func (h *AdminPromotionHandler) list(c echo.Context) error {
	items, err := h.uc.AdminList(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AdminPromotionHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.AdminGet(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AdminPromotionHandler) create(c echo.Context) error {
	in, err := bindSavePromotionInput(c)
	if err != nil {
		return writeError(c, err)
	}

	id, err := h.uc.AdminCreate(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

func (h *AdminPromotionHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	in, err := bindSavePromotionInput(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.AdminUpdate(c.Request().Context(), id, in); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *AdminPromotionHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.AdminDelete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

// multipart/form-dataからAdminSavePromotionInputを組み立てる。imageは任意。
// 日付は 2006-01-02 形式。
func bindSavePromotionInput(c echo.Context) (usecase.AdminSavePromotionInput, error) {
	discount, err := decimal.NewFromString(c.FormValue("discount_percentage"))
	if err != nil {
		return usecase.AdminSavePromotionInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid discount_percentage")
	}

	var minAmount *decimal.Decimal
	if v := c.FormValue("minimum_purchase_amount"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return usecase.AdminSavePromotionInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid minimum_purchase_amount")
		}
		minAmount = &d
	}

	startDate, err := time.Parse("2006-01-02", c.FormValue("start_date"))
	if err != nil {
		return usecase.AdminSavePromotionInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid start_date")
	}
	endDate, err := time.Parse("2006-01-02", c.FormValue("end_date"))
	if err != nil {
		return usecase.AdminSavePromotionInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid end_date")
	}

	isActive := true
	if v := c.FormValue("is_active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return usecase.AdminSavePromotionInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid is_active")
		}
		isActive = b
	}

	image, imageName, err := readFormImage(c, "image")
	if err != nil {
		return usecase.AdminSavePromotionInput{}, err
	}

	return usecase.AdminSavePromotionInput{
		Title:                 c.FormValue("title"),
		Description:           c.FormValue("description"),
		DiscountPercentage:    discount,
		MinimumPurchaseAmount: minAmount,
		StartDate:             startDate,
		EndDate:               endDate,
		IsActive:              isActive,
		Image:                 image,
		ImageName:             imageName,
	}, nil
}
