package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"invoicehub/internal/config"
	"invoicehub/internal/domain"
	"invoicehub/internal/export"
	"invoicehub/internal/handler"
	"invoicehub/internal/llm"
	"invoicehub/internal/logger"
	"invoicehub/internal/port"
	"invoicehub/internal/repository/postgres"
	"invoicehub/internal/router"
	"invoicehub/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Setup(cfg.Log)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	vendorRepo := postgres.NewVendorRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	analyticsRepo := postgres.NewAnalyticsRepo(db)
	schemaRepo := postgres.NewSchemaRepo(db)

	var sqlGenerator port.SQLGenerator
	if cfg.LLM.APIKey != "" {
		sqlGenerator = llm.NewSQLGenerator(&cfg.LLM)
	} else {
		log.Warn().Msg("INVOICEHUB_LLM_API_KEY not set; chat-with-data disabled")
	}

	// Initialize services. Downloads are streamed, so no object storage here.
	invoiceSvc := service.NewInvoiceService(invoiceRepo)
	directorySvc := service.NewDirectoryService(vendorRepo, customerRepo, paymentRepo)
	analyticsSvc := service.NewAnalyticsService(analyticsRepo, vendorRepo)
	exportSvc := service.NewExportService(invoiceRepo, nil, service.ExportConfig{SheetName: cfg.Export.SheetName})
	chatSvc := service.NewChatService(schemaRepo, sqlGenerator, service.ChatConfig{MaxRows: cfg.LLM.MaxRows})

	defaultFormat, err := export.ParseFormat(cfg.Export.DefaultFormat, domain.ExportFormatCSV)
	if err != nil {
		return fmt.Errorf("invalid export.default_format: %w", err)
	}

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	directoryH := handler.NewDirectoryHandler(directorySvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)
	exportH := handler.NewExportHandler(exportSvc, defaultFormat)
	healthH := handler.NewHealthHandler(db)
	chatH := handler.NewChatHandler(chatSvc)

	r := router.Setup(cfg.CORS, invoiceH, directoryH, analyticsH, exportH, healthH, chatH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

