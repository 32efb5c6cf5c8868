package main

import (
	"log"
	"os"

	"StorefrontAPI/external/abstractapi"
	"StorefrontAPI/external/midtrans"
	"StorefrontAPI/external/resend"

	"StorefrontAPI/internal/cache"
	"StorefrontAPI/internal/db"
	"StorefrontAPI/internal/metrics"
	"StorefrontAPI/internal/repository"
	"StorefrontAPI/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	checkoutMetrics := metrics.NewCheckoutMetrics()

	// ======================
	// EXTERNALS
	// ======================
	var emailValidator services.EmailValidator
	if os.Getenv("USE_EMAIL_REPUTATION") == "true" {
		emailValidator, err = abstractapi.NewReputationValidator()
		if err != nil {
			log.Fatal(err)
		}
	} else {
		emailValidator = services.NewLocalValidator()
	}

	var mailer services.OrderMailer
	if key := os.Getenv("RESEND_API_KEY"); key != "" {
		m, err := resend.NewResendMailer(key, "Storefront<orders@resend.dev>")
		if err != nil {
			log.Fatal(err)
		}
		mailer = m
	} else {
		log.Println("RESEND_API_KEY not set, order confirmation emails disabled")
	}

	var productCache cache.Cache
	if os.Getenv("USE_PRODUCT_CACHE") == "true" {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		productCache = cache.NewRedisCache(addr, "storefront")
	}

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	snapClient := midtrans.NewSnapClient()

	// ======================
	// REPOSITORIES
	// ======================
	authRepo := repository.NewAuthRepository(pool)
	accountRepo := repository.NewAccountRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(authRepo, accountRepo, emailValidator)
	accountSvc := services.NewAccountService(accountRepo, authRepo)
	catalogSvc := services.NewCatalogService(productRepo, categoryRepo, reviewRepo, productCache)
	reviewSvc := services.NewReviewService(reviewRepo, productRepo)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	checkoutSvc := services.NewCheckoutService(pool, cartRepo, orderRepo, paymentRepo, productRepo, checkoutMetrics, mailer)
	paymentSvc := services.NewPaymentService(snapClient, orderRepo, checkoutSvc, checkoutMetrics, baseURL)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/storefront")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc, cartSvc)
	registerAccountRoutes(api, accountSvc)
	registerCatalogRoutes(api, catalogSvc, reviewSvc)
	registerCartRoutes(api, cartSvc)
	registerOrderRoutes(api, checkoutSvc, cartSvc, accountSvc, paymentSvc)
	registerPaymentRoutes(api, paymentSvc, checkoutSvc)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
