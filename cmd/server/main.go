package main

import (
	"net/http"

	"marketplace/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"marketplace/internal/config"
	"marketplace/internal/db"
	"marketplace/internal/handler"
	"marketplace/internal/logging"
	"marketplace/internal/notify"
	"marketplace/internal/repository"
	"marketplace/internal/router"
	"marketplace/internal/scheduler"
	"marketplace/internal/service"
)

// @title Marketplace API
// @version 1.0
// @description Classifieds backend with item listings, categories, search hounds, and automatic listing expiry.
// @host localhost:8080
// @BasePath /v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity provider token.
func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogMode, cfg.LogFile)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		zap.S().Fatalf("database init: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		zap.S().Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)
	imageRepo := repository.NewItemImageRepository(gormDB)
	houndRepo := repository.NewSearchHoundRepository(gormDB)

	// Notification sink: SMTP when configured, log-only otherwise.
	var sink notify.Sink
	if cfg.SMTPHost != "" {
		sink = notify.NewSMTPSink(notify.SMTPConfig{
			Host:   cfg.SMTPHost,
			Port:   cfg.SMTPPort,
			User:   cfg.SMTPUser,
			Pass:   cfg.SMTPPass,
			Sender: cfg.MailSender,
		})
	} else {
		sink = notify.LogSink{}
	}

	// Initialize services
	images := service.NewImageReconciler(imageRepo)
	houndService := service.NewSearchHoundService(houndRepo, categoryRepo, userRepo, sink, cfg.UIHost)
	itemService := service.NewItemService(itemRepo, categoryRepo, userRepo, images, houndService, sink, cfg.ItemTTLDays)
	categoryService := service.NewCategoryService(categoryRepo, houndRepo, itemService)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	itemHandler := handler.NewItemHandler(itemService)
	searchHoundHandler := handler.NewSearchHoundHandler(houndService)

	// Register routes
	router.Register(
		e,
		cfg,
		userHandler,
		categoryHandler,
		itemHandler,
		searchHoundHandler,
	)

	// Start the expiry sweep
	sweep := scheduler.New(itemService, cfg.SweepSpec)
	if err := sweep.Start(); err != nil {
		zap.S().Fatalf("start expiry sweep: %v", err)
	}
	defer sweep.Stop()

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		zap.S().Fatalf("server start: %v", err)
	}
}
