package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/pveldman/studioadmin/internal/application/service"
	"github.com/pveldman/studioadmin/internal/config"
	"github.com/pveldman/studioadmin/internal/infrastructure/database"
	"github.com/pveldman/studioadmin/internal/infrastructure/repository"
	"github.com/pveldman/studioadmin/internal/presentation/http/handler"
	"github.com/pveldman/studioadmin/internal/presentation/http/routes"
	"github.com/pveldman/studioadmin/pkg/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	procedureRepo := repository.NewProcedureRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize mail transport
	smtpMailer := mailer.New(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		FromName: cfg.SMTP.FromName,
		From:     cfg.SMTP.From,
	})

	// Initialize services
	settingsService := service.NewSettingsService(settingsRepo)
	clientService := service.NewClientService(clientRepo)
	procedureService := service.NewProcedureService(procedureRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, clientRepo)
	receiptService := service.NewReceiptService(receiptRepo, procedureRepo, clientRepo)
	reportService := service.NewReportService(receiptRepo, clientRepo, settingsService)
	documentService := service.NewDocumentService(receiptRepo, settingsService, cfg.Storage.Path)
	exportService := service.NewExportService(receiptRepo, settingsService)
	mailService := service.NewMailService(receiptRepo, documentService, settingsService, smtpMailer)
	dashboardService := service.NewDashboardService(receiptRepo, clientRepo, procedureRepo, appointmentRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Client:      handler.NewClientHandler(clientService),
		Procedure:   handler.NewProcedureHandler(procedureService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Receipt:     handler.NewReceiptHandler(receiptService, documentService, mailService),
		Report:      handler.NewReportHandler(reportService, documentService),
		Export:      handler.NewExportHandler(exportService),
		Settings:    handler.NewSettingsHandler(settingsService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
