package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/panjf2000/ants/v2"

	"github.com/ferreteria-cash-recon/internal/config"
	"github.com/ferreteria-cash-recon/internal/dashboard"
	"github.com/ferreteria-cash-recon/internal/dashboard/service"
	"github.com/ferreteria-cash-recon/internal/data/mongo"
	"github.com/ferreteria-cash-recon/internal/data/postgres"
	"github.com/ferreteria-cash-recon/internal/logger"
	"github.com/ferreteria-cash-recon/internal/platform/messaging/producers"
	"github.com/ferreteria-cash-recon/internal/platform/persistence"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("dashboard_api")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize databases with app context
	postgresDB, err := persistence.NewPostgresDB(appCtx, log, &cfg.Postgres)
	if err != nil {
		log.Error("Failed to initialize PostgreSQL", "error", err)
		os.Exit(1)
	}

	mongoDB, err := persistence.NewMongoDB(appCtx, log, &cfg.MongoDB)
	if err != nil {
		log.Error("Failed to initialize MongoDB", "error", err)
		os.Exit(1)
	}

	// Initialize Kafka producer for the day-closed event stream
	kafkaProducer, err := producers.NewDayClosedMessageProducer(appCtx, log, &cfg.Kafka)
	if err != nil {
		log.Error("Failed to initialize day-closed Kafka producer", "error", err)
		os.Exit(1)
	}

	// Worker pool shared by the summary fan-out
	pool, err := ants.NewPool(cfg.WorkerPool.Size)
	if err != nil {
		log.Error("Failed to initialize worker pool", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	db := mongoDB.Database()
	saleRepo := mongo.NewSaleRepository(log, db)
	creditRepo := mongo.NewCreditGrantRepository(log, db)
	receivableRepo := mongo.NewReceivablePaymentRepository(log, db)
	payableRepo := mongo.NewPayablePaymentRepository(log, db)
	expenseRepo := mongo.NewExpenseRepository(log, db)
	transferRepo := mongo.NewTransferRepository(log, db)
	bankRepo := mongo.NewBankBalanceRepository(log, db)
	cashDayRepo := postgres.NewCashDayRepository(log, postgresDB)

	// Initialize services
	summaryService := service.NewSummaryService(log, pool,
		saleRepo, creditRepo, receivableRepo, payableRepo, expenseRepo, transferRepo, bankRepo)
	cashDayService := service.NewCashDayService(log, cashDayRepo, summaryService, kafkaProducer)

	// Initialize REST server
	server := dashboard.NewServer(log, cfg, summaryService, cashDayService)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Cancel the application context
	cancelAppCtx()

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	// Shutdown HTTP server first so no request races a closing dependency
	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	pool.Release()

	if err = kafkaProducer.Close(); err != nil {
		log.Error("Error closing Kafka producer", "error", err)
	}

	postgresDB.Close()

	if err = mongoDB.Close(shutdownCtx); err != nil {
		log.Error("Error closing MongoDB connection", "error", err)
	}

	// Final status
	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
