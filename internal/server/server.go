package server

import (
	"carparts/internal/config"
	"carparts/internal/handler"
	"carparts/pkg/validator"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers は起動時に登録するhandler一式。
type Handlers struct {
	Part           *handler.PartHandler
	Showcase       *handler.ShowcaseHandler
	Cart           *handler.CartHandler
	Checkout       *handler.CheckoutHandler
	Order          *handler.OrderHandler
	AdminPart      *handler.AdminPartHandler
	AdminOrder     *handler.AdminOrderHandler
	AdminPromotion *handler.AdminPromotionHandler
	AdminGallery   *handler.AdminGalleryHandler
	Report         *handler.ReportHandler
}

// New はechoを組み立てて返す（起動はしない）。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = validator.New()

	//アップロード画像の配信
	e.Static("/uploads", cfg.UploadDir)

	h.Part.RegisterRoutes(e)
	h.Showcase.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, cfg)
	h.Checkout.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
	h.AdminPart.RegisterRoutes(e, cfg)
	h.AdminOrder.RegisterRoutes(e, cfg)
	h.AdminPromotion.RegisterRoutes(e, cfg)
	h.AdminGallery.RegisterRoutes(e, cfg)
	h.Report.RegisterRoutes(e, cfg)

	return e
}

// Start は:PORTで待ち受ける。
func Start(cfg config.Config, h Handlers) error {
	e := New(cfg, h)

	addr := cfg.Port
	if addr != "" && addr[0] != ':' {
		addr = ":" + addr
	}

	return e.Start(addr)
}
