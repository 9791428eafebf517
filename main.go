package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pioneertravel/config"
	"pioneertravel/database"
	bookingRepo "pioneertravel/database/repository/booking"
	"pioneertravel/handlers"
	"pioneertravel/routes"
	"pioneertravel/services/booking"
	"pioneertravel/services/notification"
	"pioneertravel/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// A missing setting is not fatal: the intake answers 500 until it is fixed.
	if missing := cfg.MissingRequired(); len(missing) > 0 {
		logger.Error("main: missing required configuration", zap.Strings("keys", missing))
	}

	// The connection is opened lazily by the first inquiry.
	dbManager := database.NewManager(cfg.MongoDBURI, cfg.DBServerSelectionTimeout, logger)
	repo := bookingRepo.NewMongoBookingRepo(dbManager, cfg.MongoDBDatabase)

	if len(cfg.MissingRequired()) == 0 {
		go ensureIndexes(repo, logger)
	}

	sender, err := notification.NewSender(context.Background(), cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize mail sender: %v", err)
	}
	renderer := notification.Renderer{
		CompanyName:      cfg.CompanyName,
		SiteURL:          cfg.SiteURL,
		PhoneCountryCode: cfg.PhoneCountryCode,
	}
	notifier := notification.NewDefaultNotifier(sender, renderer, cfg.SMTPMail, cfg.BusinessRecipient(), cfg.MailTimeout, logger)

	intakeService := booking.NewIntakeService(cfg, dbManager, repo, notifier, logger)

	bookingHandler := handlers.NewBookingHandler(intakeService, logger)
	healthHandler := handlers.NewHealthHandler(dbManager, logger)

	handlerBundle := &handlers.HandlerBundle{
		SubmitBookingInquiry: bookingHandler.SubmitInquiry,
		Health:               healthHandler.Health,
	}
	router := routes.SetupRouter(handlerBundle, cfg, logger)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := dbManager.Close(ctx); err != nil {
		logger.Sugar().Warnf("main: closing mongodb client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// ensureIndexes is best effort; inquiries are accepted without the indexes.
func ensureIndexes(repo bookingRepo.BookingRepository, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var collections []string
	for _, c := range booking.Categories() {
		collections = append(collections, c.Collection)
	}
	if err := repo.EnsureIndexes(ctx, collections...); err != nil {
		logger.Warn("main: ensuring booking indexes failed", zap.Error(err))
		return
	}
	logger.Info("main: booking indexes ensured", zap.Strings("collections", collections))
}
