package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hotelops/internal/audit"
	"hotelops/internal/cache"
	"hotelops/internal/config"
	"hotelops/internal/database"
	"hotelops/internal/logger"
	"hotelops/internal/middleware"
	"hotelops/internal/modules/auth"
	"hotelops/internal/modules/booking"
	"hotelops/internal/modules/catalog"
	"hotelops/internal/modules/invoice"
	"hotelops/internal/modules/payment"
	"hotelops/internal/modules/revenue"
	jwtsvc "hotelops/internal/pkg/jwt"
	"hotelops/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	logger.Init(cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	redisCache := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	if redisCache == nil {
		log.Info().Msg("redis not configured, revenue caching disabled")
	}

	auditRecorder := audit.NewRecorder(repository.NewAuditRepository(db))
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(repository.NewUserRepository(db), j)
	catalogService := catalog.NewService(repository.NewCatalogStore(db), auditRecorder)
	bookingService := booking.NewService(repository.NewBookingStore(db), auditRecorder)
	invoiceService := invoice.NewService(repository.NewInvoiceStore(db), auditRecorder)
	paymentService := payment.NewService(repository.NewPaymentStore(db), auditRecorder)
	revenueService := revenue.NewService(repository.NewRevenueStore(db), redisCache, cfg.RevenueCacheTTL)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware())
	r.Use(cors.Default())

	v1 := r.Group("/api/v1")

	auth.NewHandler(authService).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.Auth(j))

	catalog.NewHandler(catalogService).RegisterRoutes(protected)
	booking.NewHandler(bookingService).RegisterRoutes(protected)
	invoice.NewHandler(invoiceService).RegisterRoutes(protected)
	payment.NewHandler(paymentService).RegisterRoutes(protected)

	reporting := protected.Group("")
	reporting.Use(middleware.RequireRole("admin", "manager"))
	revenue.NewHandler(revenueService).RegisterRoutes(reporting)

	log.Info().Str("port", cfg.Port).Msg("starting API server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
