package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	catalogapp "github.com/pizzeria/backend/internal/application/catalog"
	chatapp "github.com/pizzeria/backend/internal/application/chat"
	contentapp "github.com/pizzeria/backend/internal/application/content"
	geographyapp "github.com/pizzeria/backend/internal/application/geography"
	identityapp "github.com/pizzeria/backend/internal/application/identity"
	mediaapp "github.com/pizzeria/backend/internal/application/media"
	orderingapp "github.com/pizzeria/backend/internal/application/ordering"
	promotionapp "github.com/pizzeria/backend/internal/application/promotion"
	reportapp "github.com/pizzeria/backend/internal/application/report"
	reviewapp "github.com/pizzeria/backend/internal/application/review"
	"github.com/pizzeria/backend/internal/domain/ordering"
	"github.com/pizzeria/backend/internal/infrastructure/auth"
	"github.com/pizzeria/backend/internal/infrastructure/cache"
	"github.com/pizzeria/backend/internal/infrastructure/config"
	infrageo "github.com/pizzeria/backend/internal/infrastructure/geography"
	"github.com/pizzeria/backend/internal/infrastructure/logger"
	"github.com/pizzeria/backend/internal/infrastructure/payment"
	"github.com/pizzeria/backend/internal/infrastructure/persistence"
	"github.com/pizzeria/backend/internal/infrastructure/storage"
	"github.com/pizzeria/backend/internal/infrastructure/telemetry"
	"github.com/pizzeria/backend/internal/interfaces/http/handler"
	"github.com/pizzeria/backend/internal/interfaces/http/middleware"
	"github.com/pizzeria/backend/internal/interfaces/http/router"
	"github.com/pizzeria/backend/internal/interfaces/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting pizzeria backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if tracerProvider.IsEnabled() {
		if err := db.DB.Use(otelgorm.NewPlugin()); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}
	log.Info("Database connected")

	// Redis backs the token blacklist and the geography cache. When it
	// is unreachable both fall back to their in-process versions, which
	// is acceptable for a single instance.
	var redisClient *redis.Client
	var blacklist auth.TokenBlacklist
	var cacheStore cache.Store
	{
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Warn("Redis unreachable, using in-memory token blacklist and geography cache",
				zap.String("addr", cfg.Redis.Addr()), zap.Error(err))
			blacklist = auth.NewInMemoryTokenBlacklist()
			cacheStore = cache.NewInMemoryStore()
		} else {
			redisClient = client
			blacklist = auth.NewRedisTokenBlacklist(client)
			cacheStore = cache.NewRedisStore(client, "")
			log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
		}
	}
	defer func() {
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}
	}()

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	sizeRepo := persistence.NewGormSizeRepository(db.DB)
	crustRepo := persistence.NewGormCrustRepository(db.DB)
	comboRepo := persistence.NewGormComboRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	couponRepo := persistence.NewGormCouponRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	bannerRepo := persistence.NewGormBannerRepository(db.DB)
	newsRepo := persistence.NewGormNewsRepository(db.DB)
	faqRepo := persistence.NewGormFAQRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)
	chatRepo := persistence.NewGormChatRepository(db.DB)

	// Payment gateway
	var gateway ordering.PaymentGateway
	if cfg.Payment.GatewayURL != "" {
		gateway, err = payment.NewSandboxGateway(&payment.Config{
			BaseURL:    cfg.Payment.GatewayURL,
			MerchantID: cfg.Payment.MerchantID,
			SecretKey:  cfg.Payment.SecretKey,
			Timeout:    cfg.Payment.Timeout,
		})
		if err != nil {
			log.Fatal("Invalid payment gateway configuration", zap.Error(err))
		}
		log.Info("Payment gateway configured", zap.String("url", cfg.Payment.GatewayURL))
	} else {
		gateway = payment.NewAutoApproveGateway()
		log.Warn("No payment gateway configured, approving all charges locally")
	}

	// Object storage for catalog and content images
	var imageStorage mediaapp.ObjectStorage
	if cfg.Storage.AccessKey != "" {
		imageStorage, err = storage.NewS3ImageStorage(&cfg.Storage, log)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
	} else {
		imageStorage = storage.NewStubImageStorage()
		log.Warn("No object storage configured, uploads are kept in memory")
	}

	// Geography directory with its cache in front
	geoDirectory := cache.NewCachedDirectory(
		infrageo.NewClient(cfg.Geography.BaseURL, cfg.Geography.Timeout),
		cacheStore,
		cfg.Geography.CacheTTL,
		log,
	)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo)
	resetService := identityapp.NewPasswordResetService(userRepo, cacheStore, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, sizeRepo, crustRepo)
	optionService := catalogapp.NewOptionService(sizeRepo, crustRepo)
	comboService := catalogapp.NewComboService(comboRepo, productRepo)
	cartService := orderingapp.NewCartService(cartRepo, productRepo, comboRepo)
	checkoutService := orderingapp.NewCheckoutService(cartRepo, orderRepo, paymentRepo, couponRepo, gateway, log)
	orderService := orderingapp.NewOrderService(orderRepo, paymentRepo)
	couponService := promotionapp.NewCouponService(couponRepo)
	reviewService := reviewapp.NewReviewService(reviewRepo, productRepo)
	bannerService := contentapp.NewBannerService(bannerRepo)
	newsService := contentapp.NewNewsService(newsRepo)
	faqService := contentapp.NewFAQService(faqRepo)
	geographyService := geographyapp.NewGeographyService(geoDirectory)
	uploadService := mediaapp.NewUploadService(imageStorage, log)
	reportService := reportapp.NewReportService(reportRepo)
	chatService := chatapp.NewChatService(chatRepo, userRepo)

	// Websocket hub for live support chat
	chatHub := ws.NewChatHub(chatService, log)
	go chatHub.Run()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}
	if tracerProvider.IsEnabled() {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}

	router.Setup(engine, router.Handlers{
		System:    handler.NewSystemHandler(db.DB),
		Auth:      handler.NewAuthHandler(authService, userService, resetService),
		User:      handler.NewUserHandler(userService),
		Product:   handler.NewProductHandler(productService),
		Category:  handler.NewCategoryHandler(categoryService),
		Combo:     handler.NewComboHandler(comboService),
		Option:    handler.NewOptionHandler(optionService),
		Cart:      handler.NewCartHandler(cartService),
		Order:     handler.NewOrderHandler(checkoutService, orderService),
		Coupon:    handler.NewCouponHandler(couponService),
		Review:    handler.NewReviewHandler(reviewService),
		Content:   handler.NewContentHandler(bannerService, newsService, faqService),
		Geography: handler.NewGeographyHandler(geographyService),
		Media:     handler.NewMediaHandler(uploadService),
		Report:    handler.NewReportHandler(reportService),
		Chat:      handler.NewChatHandler(chatService, chatHub),
		ChatWS:    chatHub.Handle,
	}, router.Config{
		JWT: middleware.JWTMiddlewareConfig{
			JWTService:     jwtService,
			TokenBlacklist: blacklist,
			Logger:         log,
		},
		Logger:            log,
		CORSAllowOrigins:  cfg.HTTP.CORSAllowOrigins,
		RateLimitEnabled:  cfg.HTTP.RateLimitEnabled,
		RateLimitRequests: cfg.HTTP.RateLimitRequests,
		RateLimitWindow:   cfg.HTTP.RateLimitWindow,
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
