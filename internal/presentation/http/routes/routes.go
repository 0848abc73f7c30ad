package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pveldman/studioadmin/internal/config"
	"github.com/pveldman/studioadmin/internal/presentation/http/handler"
	"github.com/pveldman/studioadmin/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Client      *handler.ClientHandler
	Procedure   *handler.ProcedureHandler
	Appointment *handler.AppointmentHandler
	Receipt     *handler.ReceiptHandler
	Report      *handler.ReportHandler
	Export      *handler.ExportHandler
	Settings    *handler.SettingsHandler
	Dashboard   *handler.DashboardHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerClientRoutes(v1, h)
		registerProcedureRoutes(v1, h)
		registerAppointmentRoutes(v1, h)
		registerReceiptRoutes(v1, h)
		registerReportRoutes(v1, h)
		registerExportRoutes(v1, h)

		// Settings
		v1.GET("/settings", h.Settings.Get)
		v1.PUT("/settings", h.Settings.Update)

		// Dashboard
		v1.GET("/dashboard", h.Dashboard.GetStats)
	}

	return router
}

func registerClientRoutes(v1 *gin.RouterGroup, h *Handlers) {
	clients := v1.Group("/clients")
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}
}

func registerProcedureRoutes(v1 *gin.RouterGroup, h *Handlers) {
	procedures := v1.Group("/procedures")
	{
		procedures.GET("", h.Procedure.List)
		procedures.POST("", h.Procedure.Create)
		procedures.PUT("/:id", h.Procedure.Update)
		procedures.DELETE("/:id", h.Procedure.Delete)
	}
}

func registerAppointmentRoutes(v1 *gin.RouterGroup, h *Handlers) {
	appointments := v1.Group("/appointments")
	{
		appointments.GET("", h.Appointment.List)
		appointments.POST("", h.Appointment.Create)
		appointments.DELETE("/:id", h.Appointment.Delete)
	}
}

func registerReceiptRoutes(v1 *gin.RouterGroup, h *Handlers) {
	receipts := v1.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.POST("", h.Receipt.Create)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.POST("/:id/document", h.Receipt.Document)
		receipts.POST("/:id/email", h.Receipt.Email)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/period/:period", h.Report.Period)
		reports.GET("/range", h.Report.Range)
		reports.POST("/range/document", h.Report.RangeDocument)
		reports.GET("/tax-document", h.Report.Tax)
		reports.POST("/tax-document/render", h.Report.TaxDocument)
	}
}

func registerExportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	exports := v1.Group("/exports")
	{
		exports.GET("/csv", h.Export.CSV)
		exports.GET("/xlsx", h.Export.Excel)
	}
}
