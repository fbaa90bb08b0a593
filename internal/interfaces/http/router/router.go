package router

import (
	"github.com/bizdash/backend/internal/infrastructure/auth"
	"github.com/bizdash/backend/internal/infrastructure/config"
	"github.com/bizdash/backend/internal/infrastructure/logger"
	"github.com/bizdash/backend/internal/interfaces/http/handler"
	"github.com/bizdash/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers collects every handler the router mounts
type Handlers struct {
	System      *handler.SystemHandler
	Auth        *handler.AuthHandler
	Customer    *handler.CustomerHandler
	Biller      *handler.BillerHandler
	Product     *handler.ProductHandler
	Service     *handler.ServiceHandler
	Invoice     *handler.InvoiceHandler
	Stock       *handler.StockHandler
	Staff       *handler.StaffHandler
	Payroll     *handler.PayrollHandler
	Expense     *handler.ExpenseHandler
	Income      *handler.IncomeHandler
	Post        *handler.PostHandler
	LandingPage *handler.LandingPageHandler
	Report      *handler.ReportHandler
	Export      *handler.ExportHandler
}

// New builds the gin engine with the full middleware chain and all
// routes mounted under /api/v1
func New(cfg *config.Config, log *zap.Logger, jwtService *auth.JWTService, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	middleware.SetupValidator()

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		middleware.CORSWithConfig(corsCfg),
		middleware.Secure(),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
		logger.RequestLog(log),
		logger.Recovery(log),
	)

	authCfg := middleware.DefaultAuthConfig(jwtService)
	authCfg.Logger = log

	engine.GET("/health", h.System.Health)
	engine.GET("/healthz", h.System.Ping)

	api := engine.Group("/api/v1")
	api.Use(middleware.AuthMiddlewareWithConfig(authCfg))

	api.GET("/health", h.System.Health)

	registerAuthRoutes(api, h)
	registerPartnerRoutes(api, h)
	registerCatalogRoutes(api, h)
	registerBillingRoutes(api, h)
	registerInventoryRoutes(api, h)
	registerHRRoutes(api, h)
	registerFinanceRoutes(api, h)
	registerContentRoutes(api, h)
	registerReportRoutes(api, h)
	registerPublicRoutes(api, h)

	return engine
}

func registerAuthRoutes(api *gin.RouterGroup, h Handlers) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.GET("/me", h.Auth.Me)
	}
}

func registerPartnerRoutes(api *gin.RouterGroup, h Handlers) {
	customers := api.Group("/customers")
	{
		customers.POST("", h.Customer.Create)
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.GetByID)
		customers.PATCH("/:id", h.Customer.Update)
		customers.POST("/:id/archive", h.Customer.Archive)
		customers.POST("/:id/restore", h.Customer.Restore)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.GET("/:id/invoices", h.Invoice.ListByCustomer)
	}

	billers := api.Group("/billers")
	{
		billers.POST("", h.Biller.Create)
		billers.GET("", h.Biller.List)
		billers.GET("/:id", h.Biller.GetByID)
		billers.PATCH("/:id", h.Biller.Update)
		billers.DELETE("/:id", h.Biller.Delete)
	}
}

func registerCatalogRoutes(api *gin.RouterGroup, h Handlers) {
	products := api.Group("/products")
	{
		products.POST("", h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.GetByID)
		products.PATCH("/:id", h.Product.Update)
		products.POST("/:id/archive", h.Product.Archive)
		products.POST("/:id/restore", h.Product.Restore)
		products.DELETE("/:id", h.Product.Delete)
	}

	services := api.Group("/services")
	{
		services.POST("", h.Service.Create)
		services.GET("", h.Service.List)
		services.GET("/:id", h.Service.GetByID)
		services.PATCH("/:id", h.Service.Update)
		services.POST("/:id/archive", h.Service.Archive)
		services.DELETE("/:id", h.Service.Delete)
	}
}

func registerBillingRoutes(api *gin.RouterGroup, h Handlers) {
	invoices := api.Group("/invoices")
	{
		invoices.POST("", h.Invoice.Submit)
		invoices.POST("/preview", h.Invoice.PreviewTotals)
		invoices.GET("", h.Invoice.List)
		invoices.GET("/catalog-options", h.Invoice.CatalogOptions)
		invoices.GET("/number/:number", h.Invoice.GetByNumber)
		invoices.GET("/:id", h.Invoice.GetByID)
	}
}

func registerInventoryRoutes(api *gin.RouterGroup, h Handlers) {
	stock := api.Group("/stock")
	{
		stock.POST("", h.Stock.Create)
		stock.GET("", h.Stock.List)
		stock.GET("/:id", h.Stock.GetByID)
		stock.POST("/:id/adjust", h.Stock.Adjust)
		stock.PUT("/:id/restock-level", h.Stock.SetRestockLevel)
		stock.DELETE("/:id", h.Stock.Delete)
	}
}

func registerHRRoutes(api *gin.RouterGroup, h Handlers) {
	staff := api.Group("/staff", middleware.RequireAdmin())
	{
		staff.POST("", h.Staff.Create)
		staff.GET("", h.Staff.List)
		staff.GET("/:id", h.Staff.GetByID)
		staff.PATCH("/:id", h.Staff.Update)
		staff.POST("/:id/mark-left", h.Staff.MarkLeft)
	}

	payroll := api.Group("/payroll", middleware.RequireAdmin())
	{
		payroll.POST("/payments", h.Payroll.RecordPayment)
		payroll.GET("/payments", h.Payroll.List)
		payroll.GET("/payments/staff/:staff_id", h.Payroll.ListByStaff)
		payroll.GET("/month-total", h.Payroll.MonthTotal)
		payroll.DELETE("/payments/:id", h.Payroll.Delete)
	}
}

func registerFinanceRoutes(api *gin.RouterGroup, h Handlers) {
	expenses := api.Group("/expenses")
	{
		expenses.POST("", h.Expense.Record)
		expenses.GET("", h.Expense.List)
		expenses.GET("/:id", h.Expense.GetByID)
		expenses.PATCH("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}

	incomes := api.Group("/incomes")
	{
		incomes.POST("", h.Income.Record)
		incomes.GET("", h.Income.List)
		incomes.GET("/:id", h.Income.GetByID)
		incomes.PATCH("/:id", h.Income.Update)
		incomes.DELETE("/:id", h.Income.Delete)
	}
}

func registerContentRoutes(api *gin.RouterGroup, h Handlers) {
	posts := api.Group("/posts")
	{
		posts.POST("", h.Post.Create)
		posts.GET("", h.Post.List)
		posts.GET("/:id", h.Post.GetByID)
		posts.PATCH("/:id", h.Post.Update)
		posts.POST("/:id/publish", h.Post.Publish)
		posts.POST("/:id/unpublish", h.Post.Unpublish)
		posts.DELETE("/:id", h.Post.Delete)
	}

	api.GET("/landing-page", h.LandingPage.Get)
	api.PUT("/landing-page", h.LandingPage.Update)
}

func registerReportRoutes(api *gin.RouterGroup, h Handlers) {
	api.GET("/reports/dashboard", h.Report.Dashboard)

	exports := api.Group("/exports")
	{
		exports.GET("/invoices", h.Export.Invoices)
		exports.GET("/expenses", h.Export.Expenses)
		exports.GET("/incomes", h.Export.Income)
		exports.GET("/salaries", h.Export.Salaries)
	}
}

// registerPublicRoutes mounts the unauthenticated endpoints behind the
// public site. The auth middleware skips the /api/v1/public prefix.
func registerPublicRoutes(api *gin.RouterGroup, h Handlers) {
	public := api.Group("/public")
	{
		public.GET("/posts", h.Post.PublicPosts)
		public.GET("/posts/:slug", h.Post.PublicPostBySlug)
		public.GET("/landing-page", h.LandingPage.PublicLandingPage)
	}
}
