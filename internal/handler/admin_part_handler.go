package handler

import (
	"io"
	"net/http"
	"strconv"

	"carparts/internal/config"
	"carparts/internal/middleware"
	"carparts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// 画像アップロードのサイズ上限（5MB）
const maxImageBytes = 5 << 20

// /admin/parts（STAFFも可）
type AdminPartHandler struct {
	uc *usecase.PartUsecase
}

// DI
func NewAdminPartHandler(uc *usecase.PartUsecase) *AdminPartHandler {
	return &AdminPartHandler{uc: uc}
}

func (h *AdminPartHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin/parts")

	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.StaffRoleGuard())

	admin.GET("", h.list)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.remove)
}

func (h *AdminPartHandler) list(c echo.Context) error {
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.AdminListParts(c.Request().Context(), page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminPartHandler) create(c echo.Context) error {
	staffID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	in, err := bindSavePartInput(c)
	if err != nil {
		return writeError(c, err)
	}

	id, err := h.uc.AdminCreatePart(c.Request().Context(), staffID, in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

func (h *AdminPartHandler) update(c echo.Context) error {
	staffID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	in, err := bindSavePartInput(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.AdminUpdatePart(c.Request().Context(), staffID, id, in); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *AdminPartHandler) remove(c echo.Context) error {
	staffID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.AdminDeletePart(c.Request().Context(), staffID, id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

// multipart/form-dataからAdminSavePartInputを組み立てる。imageは任意。
func bindSavePartInput(c echo.Context) (usecase.AdminSavePartInput, error) {
	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return usecase.AdminSavePartInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	stock, err := strconv.ParseInt(c.FormValue("stock"), 10, 64)
	if err != nil {
		return usecase.AdminSavePartInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid stock")
	}

	isActive := true
	if v := c.FormValue("is_active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return usecase.AdminSavePartInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid is_active")
		}
		isActive = b
	}

	image, imageName, err := readFormImage(c, "image")
	if err != nil {
		return usecase.AdminSavePartInput{}, err
	}

	return usecase.AdminSavePartInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		Stock:       stock,
		Category:    c.FormValue("category"),
		Brand:       c.FormValue("brand"),
		IsActive:    isActive,
		Image:       image,
		ImageName:   imageName,
	}, nil
}

// フォームのファイルを読み込む。未添付なら(nil, "", nil)。
func readFormImage(c echo.Context, field string) ([]byte, string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		//添付なしは許容
		return nil, "", nil
	}
	if fh.Size > maxImageBytes {
		return nil, "", usecase.NewHTTPError(http.StatusBadRequest, "image too large")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, "", err
	}
	if len(data) > maxImageBytes {
		return nil, "", usecase.NewHTTPError(http.StatusBadRequest, "image too large")
	}

	return data, fh.Filename, nil
}
