package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"localserve.backend/internal/config"
	"localserve.backend/internal/infrastructure/repositories"
	"localserve.backend/internal/interfaces/http/handlers"
	"localserve.backend/internal/interfaces/http/middleware"
	"localserve.backend/internal/usecases"
	"localserve.backend/pkg/jwt"
	"localserve.backend/pkg/logger"
	"localserve.backend/pkg/otp"
	"localserve.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

// newOTPStore selects where one-time codes live. Redis keeps codes
// shared across replicas; memory is fine for a single process.
func newOTPStore(cfg *config.Config) (otp.Store, error) {
	switch cfg.OTP.Backend {
	case "redis":
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		return otp.NewRedisStore(redis.GetClient(), cfg.OTP.TTL), nil
	case "memory", "":
		return otp.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown otp backend %q", cfg.OTP.Backend)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize OTP store
	otpStore, err := newOTPStore(cfg)
	if err != nil {
		logger.Error(context.Background(), "Failed to initialize OTP store", zap.Error(err))
		return err
	}
	otpManager := otp.NewManager(otpStore, cfg.OTP.TTL)
	logger.Info(context.Background(), "OTP store initialized", zap.String("backend", cfg.OTP.Backend), zap.Duration("ttl", cfg.OTP.TTL))

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	addressRepo := repositories.NewAddressRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, otpManager, jwtService)
	serviceUsecase := usecases.NewServiceUsecase(serviceRepo, userRepo)
	bookingUsecase := usecases.NewBookingUsecase(bookingRepo, serviceRepo, userRepo, cartRepo, cfg.Booking.StrictTransitions)
	paymentUsecase := usecases.NewPaymentUsecase(paymentRepo, bookingRepo)
	cartUsecase := usecases.NewCartUsecase(cartRepo, serviceRepo)
	addressUsecase := usecases.NewAddressUsecase(addressRepo)
	settingsUsecase := usecases.NewSettingsUsecase(settingsRepo, otpManager)
	locationUsecase := usecases.NewLocationUsecase()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	serviceHandler := handlers.NewServiceHandler(serviceUsecase)
	bookingHandler := handlers.NewBookingHandler(bookingUsecase)
	paymentHandler := handlers.NewPaymentHandler(paymentUsecase)
	cartHandler := handlers.NewCartHandler(cartUsecase)
	addressHandler := handlers.NewAddressHandler(addressUsecase)
	adminHandler := handlers.NewAdminHandler(settingsUsecase)
	lookupHandler := handlers.NewLookupHandler()
	locationHandler := handlers.NewLocationHandler(locationUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:     authHandler,
		serviceHandler:  serviceHandler,
		bookingHandler:  bookingHandler,
		paymentHandler:  paymentHandler,
		cartHandler:     cartHandler,
		addressHandler:  addressHandler,
		adminHandler:    adminHandler,
		lookupHandler:   lookupHandler,
		locationHandler: locationHandler,
		authMiddleware:  authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		_ = logger.Sync()
		_ = sqlDB.Close()
		os.Exit(0)
	}()

	// Start server
	log.Printf("🚀 LocalServe Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
