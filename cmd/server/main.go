package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/bizdash/backend/internal/application/billing"
	catalogapp "github.com/bizdash/backend/internal/application/catalog"
	contentapp "github.com/bizdash/backend/internal/application/content"
	exportapp "github.com/bizdash/backend/internal/application/export"
	financeapp "github.com/bizdash/backend/internal/application/finance"
	hrapp "github.com/bizdash/backend/internal/application/hr"
	identityapp "github.com/bizdash/backend/internal/application/identity"
	inventoryapp "github.com/bizdash/backend/internal/application/inventory"
	partnerapp "github.com/bizdash/backend/internal/application/partner"
	reportapp "github.com/bizdash/backend/internal/application/report"
	"github.com/bizdash/backend/internal/infrastructure/auth"
	"github.com/bizdash/backend/internal/infrastructure/cache"
	"github.com/bizdash/backend/internal/infrastructure/config"
	"github.com/bizdash/backend/internal/infrastructure/logger"
	"github.com/bizdash/backend/internal/infrastructure/persistence"
	"github.com/bizdash/backend/internal/interfaces/http/handler"
	"github.com/bizdash/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
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

	log.Info("Starting BizDash backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	billerRepo := persistence.NewGormBillerRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	serviceRepo := persistence.NewGormServiceRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	stockRepo := persistence.NewGormStockRepository(db.DB)
	staffRepo := persistence.NewGormStaffRepository(db.DB)
	salaryRepo := persistence.NewGormSalaryRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	incomeRepo := persistence.NewGormIncomeRepository(db.DB)
	postRepo := persistence.NewGormPostRepository(db.DB)
	landingRepo := persistence.NewGormLandingPageRepository(db.DB)

	// Auth infrastructure
	jwtService := auth.NewJWTService(cfg.JWT)
	hasher := auth.NewBcryptHasher(cfg.JWT.BcryptCost)

	// Catalog snapshot cache, Redis when enabled
	cacheFactory := cache.NewSnapshotCacheFactory(cfg.Redis, cfg.Catalog.SnapshotTTL, cache.WithLogger(log))
	snapshotCache, err := cacheFactory.CreateCache()
	if err != nil {
		log.Fatal("Failed to create catalog snapshot cache", zap.Error(err))
	}

	// Application services
	catalogSession := billingapp.NewCatalogSessionService(productRepo, serviceRepo, snapshotCache, log)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, customerRepo, billerRepo, catalogSession)
	productService := catalogapp.NewProductService(productRepo, catalogSession)
	serviceService := catalogapp.NewServiceService(serviceRepo, catalogSession)
	customerService := partnerapp.NewCustomerService(customerRepo)
	billerService := partnerapp.NewBillerService(billerRepo)
	stockService := inventoryapp.NewStockService(stockRepo, productRepo)
	staffService := hrapp.NewStaffService(staffRepo, hasher)
	payrollService := hrapp.NewPayrollService(staffRepo, salaryRepo)
	expenseService := financeapp.NewExpenseService(expenseRepo)
	incomeService := financeapp.NewIncomeService(incomeRepo)
	postService := contentapp.NewPostService(postRepo)
	landingService := contentapp.NewLandingPageService(landingRepo)
	authService := identityapp.NewAuthService(staffRepo, hasher, jwtService)
	dashboardService := reportapp.NewDashboardService(
		customerRepo, productRepo, postRepo, staffRepo,
		invoiceRepo, expenseRepo, incomeRepo, salaryRepo,
	)
	exporter := exportapp.NewExporter(invoiceRepo, expenseRepo, incomeRepo, salaryRepo)

	handlers := router.Handlers{
		System:      handler.NewSystemHandler(db),
		Auth:        handler.NewAuthHandler(authService),
		Customer:    handler.NewCustomerHandler(customerService),
		Biller:      handler.NewBillerHandler(billerService),
		Product:     handler.NewProductHandler(productService),
		Service:     handler.NewServiceHandler(serviceService),
		Invoice:     handler.NewInvoiceHandler(invoiceService, catalogSession),
		Stock:       handler.NewStockHandler(stockService),
		Staff:       handler.NewStaffHandler(staffService),
		Payroll:     handler.NewPayrollHandler(payrollService),
		Expense:     handler.NewExpenseHandler(expenseService),
		Income:      handler.NewIncomeHandler(incomeService),
		Post:        handler.NewPostHandler(postService),
		LandingPage: handler.NewLandingPageHandler(landingService),
		Report:      handler.NewReportHandler(dashboardService),
		Export:      handler.NewExportHandler(exporter),
	}

	engine := router.New(cfg, log, jwtService, handlers)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
