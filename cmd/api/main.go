package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"hostelhub/internal/config"
	"hostelhub/internal/database"
	"hostelhub/internal/middleware"
	"hostelhub/internal/modules/admin"
	"hostelhub/internal/modules/auth"
	"hostelhub/internal/modules/booking"
	"hostelhub/internal/modules/catalog"
	"hostelhub/internal/modules/payment"
	"hostelhub/internal/modules/recurring"
	"hostelhub/internal/modules/review"
	"hostelhub/internal/modules/settlement"
	jwtsvc "hostelhub/internal/pkg/jwt"
	"hostelhub/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	userRepo := repository.NewUserRepository(db)
	hostelRepo := repository.NewHostelRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	rates := config.NewCommissionRateHolder(cfg.CommissionRate)

	var gateway payment.Gateway
	switch cfg.PaymentProvider {
	case "razorpay":
		gateway = payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	default:
		gateway = payment.NewMockGateway()
	}

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(hostelRepo, rdb)
	catalogHandler := catalog.NewHandler(catalogService)

	recurringService := recurring.NewService(db)
	recurringHandler := recurring.NewHandler(recurringService)

	paymentService := payment.NewService(db, gateway, rates, recurringService)
	paymentHandler := payment.NewHandler(paymentService)

	bookingService := booking.NewService(bookingRepo, hostelRepo, gateway, cfg.Currency)
	bookingHandler := booking.NewHandler(bookingService)

	settlementService := settlement.NewService(db)
	settlementHandler := settlement.NewHandler(settlementService)

	reviewService := review.NewService(db)
	reviewHandler := review.NewHandler(reviewService)

	adminService := admin.NewService(db, rates)
	adminHandler := admin.NewHandler(adminService, catalogService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			recurringHandler.RegisterRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterOwnerRoutes(protected)
			settlementHandler.RegisterRoutes(protected)
			adminHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("api listening on :%s provider=%s", cfg.Port, cfg.PaymentProvider)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
