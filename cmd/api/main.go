package main

import (
	"carparts/internal/config"
	"carparts/internal/domain/model"
	"carparts/internal/handler"
	"carparts/internal/infra/db"
	infraRepo "carparts/internal/infra/repository"
	infraStorage "carparts/internal/infra/storage"
	"carparts/internal/server"
	"carparts/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Part{},
		&model.CartItem{},
		&model.Purchase{},
		&model.PurchaseItem{},
		&model.PaymentMethod{},
		&model.PaymentTransaction{},
		&model.Promotion{},
		&model.GalleryImage{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	//Repository（GORM実装）生成
	partRepo := infraRepo.NewPartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	purchaseRepo := infraRepo.NewPurchaseGormRepository(gormDB)
	purchaseItemRepo := infraRepo.NewPurchaseItemGormRepository(gormDB)
	paymentMethodRepo := infraRepo.NewPaymentMethodGormRepository(gormDB)
	paymentTxnRepo := infraRepo.NewPaymentTransactionGormRepository(gormDB)
	promotionRepo := infraRepo.NewPromotionGormRepository(gormDB)
	galleryRepo := infraRepo.NewGalleryGormRepository(gormDB)
	reportRepo := infraRepo.NewReportGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//画像の保存先
	files := infraStorage.NewLocalFileStore(cfg.UploadDir)

	//Usecase生成
	partUC := usecase.NewPartUsecase(partRepo, files)
	cartUC := usecase.NewCartUsecase(cartItemRepo, partRepo)
	checkoutUC := usecase.NewCheckoutUsecase(cartItemRepo, partRepo, paymentMethodRepo, txManager)
	orderUC := usecase.NewOrderUsecase(purchaseRepo, purchaseItemRepo, paymentTxnRepo, paymentMethodRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(purchaseRepo, purchaseItemRepo, paymentTxnRepo, txManager)
	promotionUC := usecase.NewPromotionUsecase(promotionRepo, files)
	galleryUC := usecase.NewGalleryUsecase(galleryRepo, files)
	reportUC := usecase.NewReportUsecase(reportRepo)

	//Handler生成
	handlers := server.Handlers{
		Part:           handler.NewPartHandler(partUC),
		Showcase:       handler.NewShowcaseHandler(promotionUC, galleryUC),
		Cart:           handler.NewCartHandler(cartUC),
		Checkout:       handler.NewCheckoutHandler(checkoutUC, orderUC),
		Order:          handler.NewOrderHandler(orderUC),
		AdminPart:      handler.NewAdminPartHandler(partUC),
		AdminOrder:     handler.NewAdminOrderHandler(adminOrderUC),
		AdminPromotion: handler.NewAdminPromotionHandler(promotionUC),
		AdminGallery:   handler.NewAdminGalleryHandler(galleryUC),
		Report:         handler.NewReportHandler(reportUC),
	}

	//Server起動
	if err := server.Start(cfg, handlers); err != nil {
		log.Fatalf("server: %v", err)
	}
}
