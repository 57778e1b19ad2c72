package main

import (
	"net/http"

	"dukaan-be/internal/api"
	"dukaan-be/internal/cart"
	"dukaan-be/internal/category"
	"dukaan-be/internal/checkout"
	"dukaan-be/internal/config"
	"dukaan-be/internal/db"
	"dukaan-be/internal/hero"
	"dukaan-be/internal/logger"
	"dukaan-be/internal/order"
	"dukaan-be/internal/product"
	"dukaan-be/internal/review"
	"dukaan-be/internal/upload"
	"dukaan-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	checkoutRepo := checkout.NewRepository(database)
	checkoutSvc := checkout.NewService(checkoutRepo, userSvc)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	reviewRepo := review.NewRepository(database)
	reviewSvc := review.NewService(reviewRepo)

	heroRepo := hero.NewRepository(database)
	heroSvc := hero.NewService(heroRepo)

	uploadGateway := upload.NewCloudinaryGateway(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)

	router := api.NewRouter(api.Handlers{
		Roles:    userSvc,
		Auth:     api.NewAuthHandler(userSvc),
		Product:  api.NewProductHandler(productSvc, reviewSvc),
		Category: api.NewCategoryHandler(categorySvc),
		Hero:     api.NewHeroHandler(heroSvc),
		Cart:     api.NewCartHandler(cartSvc),
		Checkout: api.NewCheckoutHandler(checkoutSvc),
		Order:    api.NewOrderHandler(orderSvc),
		Review:   api.NewReviewHandler(reviewSvc),
		Profile:  api.NewProfileHandler(userSvc),
		Upload:   api.NewUploadHandler(uploadGateway),
	})

	logger.L().Info("🚀 API server running", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
