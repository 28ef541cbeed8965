package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storabook/config"
	"storabook/database"
	ledgerRepo "storabook/database/repository/bookingledger"
	customerRepo "storabook/database/repository/customer"
	inquiryRepo "storabook/database/repository/inquiry"
	"storabook/handlers"
	"storabook/middleware"
	"storabook/routes"
	"storabook/services/assistant"
	"storabook/services/booking"
	"storabook/services/calendar"
	"storabook/services/inquiry"
	"storabook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	ctx := context.Background()

	calendarSvc, err := calendar.NewGoogleCalendarService(ctx, config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar service: %v", err)
	}

	completionClient, err := assistant.NewCompletionClient(ctx, config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize completion client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	custRepo := customerRepo.NewMongoCustomerRepo()
	bookingLedger := ledgerRepo.NewMongoLedgerRepo()
	inqRepo := inquiryRepo.NewMongoInquiryRepo()

	// services.
	bookingSvc := &booking.DefaultBookingService{
		Calendar:  calendarSvc,
		Customers: custRepo,
		Ledger:    bookingLedger,
		Policy:    config.Policy(),
		Location:  config.Location(),
		Cache:     utils.GetCacheClient(),
	}

	ctxStore := assistant.NewRedisContextStore(utils.GetContextCacheClient(), 30*time.Minute)
	assistantSvc := assistant.NewDefaultAssistantService(completionClient, ctxStore)

	inquirySvc := &inquiry.DefaultInquiryService{
		Repo:      inqRepo,
		Customers: custRepo,
	}

	chatHandler := handlers.NewChatHandler(assistantSvc)
	bookingHandler := handlers.NewBookingHandler(bookingSvc, logger)
	inquiryHandler := handlers.NewInquiryHandler(inquirySvc, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatHandler: chatHandler.Chat,

		GetAvailableSlotsHandler: bookingHandler.GetAvailableSlots,
		CreateBookingHandler:     bookingHandler.CreateBooking,

		CreateInquiryHandler:        inquiryHandler.CreateInquiry,
		UpdateInquiryStatusHandler:  inquiryHandler.UpdateInquiryStatus,
		AddInquiryResponseHandler:   inquiryHandler.AddInquiryResponse,
		GetCustomerInquiriesHandler: inquiryHandler.GetCustomerInquiries,
		GetInquiryHistoryHandler:    inquiryHandler.GetInquiryHistory,
		SearchInquiriesHandler:      inquiryHandler.SearchInquiries,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetContextCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := database.MongoClient.Disconnect(context.Background()); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect mongo: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
