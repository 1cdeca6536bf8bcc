package handler

import (
	"net/http"
	"strconv"
	"time"

	"carparts/internal/config"
	"carparts/internal/middleware"
	"carparts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/reports はADMINのみ
type ReportHandler struct {
	uc *usecase.ReportUsecase
}

// DI
func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/reports")

	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.GET("/sales", h.sales)
	g.GET("/top-parts", h.topParts)
	g.GET("/staff-sales", h.staffSales)
}

// from/to は 2006-01-02。未指定は当月。
func bindReportPeriod(c echo.Context) (usecase.ReportPeriodInput, error) {
	var in usecase.ReportPeriodInput

	if v := c.QueryParam("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return usecase.ReportPeriodInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid from")
		}
		in.From = t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return usecase.ReportPeriodInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid to")
		}
		in.To = t
	}

	return in, nil
}

func (h *ReportHandler) sales(c echo.Context) error {
	in, err := bindReportPeriod(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.SalesReport(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) topParts(c echo.Context) error {
	in, err := bindReportPeriod(c)
	if err != nil {
		return writeError(c, err)
	}

	limit := 10
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.TopParts(c.Request().Context(), in, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) staffSales(c echo.Context) error {
	in, err := bindReportPeriod(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.StaffSales(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
